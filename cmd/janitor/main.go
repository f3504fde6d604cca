// Barre las referencias colgantes que deja el delete en dos pasos (juego
// borrado, referencia en la wishlist todavía no). Pensado para correr
// agendado como lambda.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jose-valero/wishlist-bot/internal/infra/storage"
)

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	db, err := storage.Open(ctx, dsn)
	if err != nil {
		return fmt.Sprintf("open: %v", err), nil
	}
	defer db.Close()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	repo := storage.NewWishlistRepo(db)
	ids, err := repo.DanglingGameIDs(cctx)
	if err != nil {
		return fmt.Sprintf("scan: %v", err), nil
	}
	if len(ids) == 0 {
		return "ok (nada colgante)", nil
	}

	n, err := repo.RemoveRefs(cctx, ids)
	if err != nil {
		return fmt.Sprintf("sweep: %v", err), nil
	}
	return fmt.Sprintf("ok (%d refs de %d juegos)", n, len(ids)), nil
}

func main() { lambda.Start(handler) }
