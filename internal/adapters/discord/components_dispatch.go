// logica de MESSAGE_COMPONENT: decodificar el custom_id, chequear que el
// botón sea del que clickea, y recién ahí tocar el store.
package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wishlist-bot/internal/infra/storage"
)

func (h *Handler) handleComponent(ctx context.Context, ic *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	who, err := resolveCaller(ic)
	if err != nil {
		log.Printf("component: payload sin usuario: %v", err)
		return ephemeralResponse(unauthorizedMsg), nil
	}

	data := ic.MessageComponentData()
	st, err := decodeCustomID(data.CustomID)
	if err != nil {
		log.Printf("component: custom_id inválido %q", data.CustomID)
		return ephemeralResponse(unauthorizedMsg), nil
	}

	// Chequeo de dueño: el owner codificado en el botón tiene que ser el que
	// clickea. Si no, respuesta genérica y CERO mutaciones.
	if st.Owner != who.ID {
		log.Printf("component: click ajeno op=%s owner=%s by=%s", st.Op, st.Owner, who.ID)
		return ephemeralResponse(unauthorizedMsg), nil
	}

	if !h.clicks.Allow(who.ID) {
		return ephemeralResponse(slowDownMsg), nil
	}

	switch st.Op {

	case opNavigate:
		off, err := st.offset()
		if err != nil {
			return ephemeralResponse(unauthorizedMsg), nil
		}
		stop := step("component.nav")
		items, total, err := h.wishlist.Page(ctx, who.ID, who.Name, off, PageSize)
		stop()
		if err != nil {
			return nil, err
		}
		// un offset pasado de largo (la lista se achicó entre renders) da
		// página vacía, nunca out-of-range
		content, comps := renderWishlistPage(items, off, PageSize, total, who.ID)
		return updateResponse(content, comps), nil

	case opSelect:
		id, err := st.gameID()
		if err != nil {
			return ephemeralResponse(unauthorizedMsg), nil
		}
		game, err := h.wishlist.Game(ctx, id)
		if err == storage.ErrNotFound {
			return updateResponse(goneMsg, []discordgo.MessageComponent{}), nil
		}
		if err != nil {
			return nil, err
		}
		return updateResponse(
			fmt.Sprintf("What do you want to do with **%s**?", game.Name),
			confirmRow(game.ID, who.ID),
		), nil

	case opShow:
		id, err := st.gameID()
		if err != nil {
			return ephemeralResponse(unauthorizedMsg), nil
		}
		game, err := h.wishlist.Game(ctx, id)
		if err == storage.ErrNotFound {
			return updateResponse(goneMsg, []discordgo.MessageComponent{}), nil
		}
		if err != nil {
			return nil, err
		}
		// TODO: traer detalles reales cuando el store guarde algo más que el
		// nombre; por ahora solo confirmamos que sigue en la lista
		return updateResponse(
			fmt.Sprintf("**%s** is on the wishlist, no details to show yet", game.Name),
			[]discordgo.MessageComponent{},
		), nil

	case opDelete:
		id, err := st.gameID()
		if err != nil {
			return ephemeralResponse(unauthorizedMsg), nil
		}
		stop := step("component.del")
		game, err := h.wishlist.Delete(ctx, who.ID, who.Name, id)
		stop()
		if err == storage.ErrNotFound {
			return updateResponse(goneMsg, []discordgo.MessageComponent{}), nil
		}
		if err != nil {
			return nil, err
		}
		return updateResponse(
			fmt.Sprintf("The game **%s** was removed from the wishlist", game.Name),
			[]discordgo.MessageComponent{},
		), nil

	default:
		log.Printf("component: op desconocida %q", st.Op)
		return ephemeralResponse(unauthorizedMsg), nil
	}
}
