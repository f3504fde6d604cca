package httpdiscord

import (
	"crypto/ed25519"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wishlist-bot/internal/adapters/discord"
)

type Server struct {
	pub     ed25519.PublicKey
	handler *discord.Handler
	mux     *http.ServeMux
}

func New(pub ed25519.PublicKey, h *discord.Handler) *Server {
	s := &Server{pub: pub, handler: h, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/interactions", s.handleInteractions)
}

func (s *Server) handleInteractions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// firma ed25519 sobre timestamp+body; si no valida, el core ni corre
	if !discordgo.VerifyInteraction(r, s.pub) {
		http.Error(w, "Bad request signature", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	_ = r.Body.Close()

	var ic discordgo.Interaction
	if err := json.Unmarshal(body, &ic); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	resp, err := s.handler.Handle(r.Context(), &ic)
	if err != nil {
		// store caído: ack fallido a propósito, no hay retry que entre en el
		// presupuesto de respuesta de Discord
		log.Printf("interaction sin responder: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// ServeHTTP expone el mux (tests y wrappers).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) Start(addr string) {
	log.Printf("🌐 HTTP listening on %s", addr)
	if err := http.ListenAndServe(addr, s.mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
