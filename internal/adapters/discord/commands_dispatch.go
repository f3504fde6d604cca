// logica de APPLICATION_COMMAND: acá solo interpretamos la interacción y
// despachamos al servicio que corresponda.
package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

func (h *Handler) handleCommand(ctx context.Context, ic *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	who, err := resolveCaller(ic)
	if err != nil {
		log.Printf("cmd: payload sin usuario: %v", err)
		return messageResponse(genericErrMsg), nil
	}

	data := ic.ApplicationCommandData()
	log.Printf("cmd: /%s by=%s", data.Name, who.ID)

	switch data.Name {

	//--> comando de prueba, quedó del primer deploy y ya es tradición
	case "tesito":
		return messageResponse("con pansito"), nil

	case "add":
		item, ok := optString(data, "item")
		if !ok || item == "" {
			return messageResponse("You have to tell me which game to add"), nil
		}
		stop := step("cmd.add")
		game, already, err := h.wishlist.Add(ctx, who.ID, who.Name, item)
		stop()
		if err != nil {
			return nil, err
		}
		if already {
			return messageResponse(fmt.Sprintf("The game %s had already been added to the wishlist", game.Name)), nil
		}
		return messageResponse(fmt.Sprintf("The game **%s** added to the wishlist", game.Name)), nil

	case "list":
		stop := step("cmd.list")
		items, total, err := h.wishlist.Page(ctx, who.ID, who.Name, 0, PageSize)
		stop()
		if err != nil {
			return nil, err
		}
		content, comps := renderWishlistPage(items, 0, PageSize, total, who.ID)
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:    content,
				Components: comps,
			},
		}, nil

	default:
		log.Printf("cmd: comando desconocido %q", data.Name)
		return messageResponse(unknownCmdMsg), nil
	}
}

func optString(data discordgo.ApplicationCommandInteractionData, name string) (string, bool) {
	for _, o := range data.Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}
