package discord

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "tesito",
		Description: "para ver si funca o no funca na",
	},
	{
		Name:        "add",
		Description: "Agrega un juego a tu wishlist",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "item",
			Description: "Nombre del juego",
			Required:    true,
		}},
	},
	{
		Name:        "list",
		Description: "Muestra tu wishlist, de a 5 por página",
	},
}
