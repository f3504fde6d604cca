package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wishlist-bot/internal/infra/storage"
)

// PageSize: items por página. 5 porque Discord permite como máximo 5 botones
// por fila y la fila de selección lleva un botón por item.
const PageSize = 5

const emptyListMsg = "No items have been found"

// renderWishlistPage arma el texto y los botones de una página. Es
// determinístico en (offset, limit, total): el mismo estado rinde siempre la
// misma página, venga de /list o de un click viejo.
func renderWishlistPage(items []storage.Game, offset, limit, total int, owner string) (string, []discordgo.MessageComponent) {
	if total == 0 {
		return emptyListMsg, nil
	}

	var b strings.Builder
	for i, g := range items {
		fmt.Fprintf(&b, "%d) **%s**\n", offset+i+1, g.Name)
	}

	var rows []discordgo.MessageComponent
	if len(items) > 0 {
		sel := make([]discordgo.MessageComponent, 0, len(items))
		for i, g := range items {
			sel = append(sel, discordgo.Button{
				Style:    discordgo.SecondaryButton,
				Label:    strconv.Itoa(i + 1),
				CustomID: gameState(opSelect, g.ID, owner).encode(),
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: sel})
	}
	if nav := navRow(offset, limit, total, owner); nav != nil {
		rows = append(rows, *nav)
	}
	return b.String(), rows
}

// navRow decide la fila de navegación. Casos excluyentes, en este orden:
// todo entra en una página => nada; primera página => solo Next; última =>
// solo Prev; en el medio => Prev y Next. El prev se clampea a 0 para que un
// botón viejo nunca codifique un offset negativo.
func navRow(offset, limit, total int, owner string) *discordgo.ActionsRow {
	prev := discordgo.Button{
		Style:    discordgo.PrimaryButton,
		Label:    "◀ Prev",
		CustomID: navState(max(0, offset-limit), owner).encode(),
	}
	next := discordgo.Button{
		Style:    discordgo.PrimaryButton,
		Label:    "Next ▶",
		CustomID: navState(offset+limit, owner).encode(),
	}

	switch {
	case total <= limit:
		return nil
	case offset == 0:
		return &discordgo.ActionsRow{Components: []discordgo.MessageComponent{next}}
	case offset+limit >= total:
		return &discordgo.ActionsRow{Components: []discordgo.MessageComponent{prev}}
	default:
		return &discordgo.ActionsRow{Components: []discordgo.MessageComponent{prev, next}}
	}
}

// confirmRow: sub-acciones sobre un juego ya seleccionado, atadas al juego y
// al dueño de la lista.
func confirmRow(gameID int64, owner string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Style:    discordgo.PrimaryButton,
					Label:    "Show",
					CustomID: gameState(opShow, gameID, owner).encode(),
				},
				discordgo.Button{
					Style:    discordgo.DangerButton,
					Label:    "Delete",
					CustomID: gameState(opDelete, gameID, owner).encode(),
				},
			},
		},
	}
}
