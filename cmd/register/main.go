// Registro one-shot del manifest de comandos (PUT global, pisa el set
// completo). Se corre a mano cuando cambia el manifest, no en request time.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordadapter "github.com/jose-valero/wishlist-bot/internal/adapters/discord"
)

func main() {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_BOT_TOKEN")
	appID := os.Getenv("DISCORD_APP_ID")
	if token == "" || appID == "" {
		log.Fatal("faltan DISCORD_BOT_TOKEN / DISCORD_APP_ID")
	}

	auth := strings.TrimSpace(token)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}

	cmds, err := s.ApplicationCommandBulkOverwrite(appID, "", discordadapter.Commands)
	if err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	for _, c := range cmds {
		log.Printf("✅ /%s (%s)", c.Name, c.ID)
	}
}
