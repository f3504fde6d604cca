// Mismo handler de interactions pero detrás de API Gateway v2, para correrlo
// como lambda en vez del server propio de cmd/bot.
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"

	discordadapter "github.com/jose-valero/wishlist-bot/internal/adapters/discord"
	"github.com/jose-valero/wishlist-bot/internal/app/service"
	"github.com/jose-valero/wishlist-bot/internal/infra/storage"
)

var (
	h   *discordadapter.Handler
	pub ed25519.PublicKey
)

func init() {
	raw, err := hex.DecodeString(os.Getenv("DISCORD_PUBLIC_KEY"))
	if err != nil || len(raw) != ed25519.PublicKeySize {
		fmt.Println("DISCORD_PUBLIC_KEY missing or invalid")
		return
	}
	pub = raw

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Println("DATABASE_URL empty; running without DB")
		return
	}
	db, err := storage.Open(context.Background(), dsn)
	if err != nil {
		fmt.Println("db open:", err)
		return
	}

	svc := service.NewWishlistService(
		storage.NewUserRepo(db),
		storage.NewGameRepo(db),
		storage.NewWishlistRepo(db),
	)
	h = discordadapter.NewHandler(svc)
}

func header(req events.APIGatewayV2HTTPRequest, name string) string {
	if v := req.Headers[strings.ToLower(name)]; v != "" {
		return v
	}
	return req.Headers[name]
}

func verify(sigHex, timestamp, body string) bool {
	if pub == nil {
		return false
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(pub, []byte(timestamp+body), sig)
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	// 1) body crudo
	body := req.Body
	if req.IsBase64Encoded {
		dec, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{StatusCode: 400, Body: "invalid base64"}, nil
		}
		body = string(dec)
	}

	// 2) firma (una sola vez, sobre timestamp+body)
	sig := header(req, "X-Signature-Ed25519")
	ts := header(req, "X-Signature-Timestamp")
	if !verify(sig, ts, body) {
		return events.APIGatewayV2HTTPResponse{StatusCode: 401, Body: "Bad request signature"}, nil
	}

	if h == nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: 500, Body: "not ready"}, nil
	}

	// 3) despachar
	var ic discordgo.Interaction
	if err := json.Unmarshal([]byte(body), &ic); err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: 400, Body: "bad request"}, nil
	}
	resp, err := h.Handle(ctx, &ic)
	if err != nil {
		fmt.Println("interaction sin responder:", err)
		return events.APIGatewayV2HTTPResponse{StatusCode: 500, Body: "internal error"}, nil
	}

	out, _ := json.Marshal(resp)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(out),
	}, nil
}

func main() { lambda.Start(handler) }
