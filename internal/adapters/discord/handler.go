package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wishlist-bot/internal/app/service"
)

// Textos fijos de fallback. Cualquier forma rara de payload cae en uno de
// estos, nunca en una request sin responder.
const (
	genericErrMsg   = "Something went wrong processing that, try again later"
	unknownCmdMsg   = "I don't know that command yet"
	unauthorizedMsg = "That button belongs to someone else's list"
	slowDownMsg     = "Easy, one click at a time"
	goneMsg         = "That game is no longer available"
)

type Handler struct {
	wishlist *service.WishlistService
	clicks   *clickLimiter
}

func NewHandler(wishlist *service.WishlistService) *Handler {
	return &Handler{
		wishlist: wishlist,
		clicks:   newClickLimiter(700 * time.Millisecond),
	}
}

// Handle es el punto de entrada de cada interacción ya verificada. Siempre
// devuelve un envelope armado; el error queda reservado para fallas del
// store, que se reportan como ack fallido (500) y no como mensaje.
func (h *Handler) Handle(ctx context.Context, ic *discordgo.Interaction) (resp *discordgo.InteractionResponse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic en interaction type=%d: %v", ic.Type, rec)
			resp, err = messageResponse(genericErrMsg), nil
		}
	}()

	switch ic.Type {
	case discordgo.InteractionPing:
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}, nil

	case discordgo.InteractionApplicationCommand:
		return h.handleCommand(ctx, ic)

	case discordgo.InteractionMessageComponent:
		return h.handleComponent(ctx, ic)

	default:
		log.Printf("interaction type desconocido: %d", ic.Type)
		return messageResponse(genericErrMsg), nil
	}
}

func messageResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}
}

func ephemeralResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

// updateResponse edita el mensaje que tenía los botones en vez de crear uno
// nuevo. comps vacío (no nil) limpia las filas de botones.
func updateResponse(content string, comps []discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: comps,
		},
	}
}
