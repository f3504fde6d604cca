package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

var errUnknownUser = errors.New("interaction sin member ni user")

// caller es la identidad ya resuelta del que disparó la interacción. Se
// resuelve UNA vez acá y el resto del pipeline la consume como valor plano,
// nada de re-sniffear la forma del payload más abajo.
type caller struct {
	ID   string
	Name string
}

// En guild el usuario viene en member.user; por DM viene arriba en user.
// Ninguna de las dos formas => payload malformado, respuesta genérica.
func resolveCaller(ic *discordgo.Interaction) (caller, error) {
	var u *discordgo.User
	switch {
	case ic.Member != nil && ic.Member.User != nil:
		u = ic.Member.User
	case ic.User != nil:
		u = ic.User
	default:
		return caller{}, errUnknownUser
	}

	name := u.GlobalName
	if name == "" {
		name = u.Username
	}
	return caller{ID: u.ID, Name: name}, nil
}
