package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	discordadapter "github.com/jose-valero/wishlist-bot/internal/adapters/discord"
	"github.com/jose-valero/wishlist-bot/internal/adapters/httpdiscord"
	"github.com/jose-valero/wishlist-bot/internal/app/service"
	"github.com/jose-valero/wishlist-bot/internal/infra/config"
	"github.com/jose-valero/wishlist-bot/internal/infra/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	pub, err := hex.DecodeString(cfg.PublicKey)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		log.Fatalf("DISCORD_PUBLIC_KEY inválida")
	}

	// DB
	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}
	log.Println("✅ DB lista y migrada")

	// Repos + service + handler
	usersRepo := storage.NewUserRepo(db)
	gamesRepo := storage.NewGameRepo(db)
	wishlistRepo := storage.NewWishlistRepo(db)

	wishlistSvc := service.NewWishlistService(usersRepo, gamesRepo, wishlistRepo)
	handler := discordadapter.NewHandler(wishlistSvc)

	// Endpoint de interactions (la firma se verifica adentro)
	web := httpdiscord.New(ed25519.PublicKey(pub), handler)
	go web.Start(cfg.HTTPAddr)
	log.Printf("✅ interactions endpoint arriba en %s", cfg.HTTPAddr)

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
