package main

import (
	"log"
	"net/http"
	"os"

	"github.com/obratrack/project-tracking-api/internal/relay"
	"github.com/rs/cors"
)

func main() {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY is required")
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "onboarding@resend.dev"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	handler := relay.NewHandler(relay.NewResendSender(apiKey, from))

	// Permissive CORS so the browser client can invoke the function
	// directly; OPTIONS pre-flights are answered here.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	})

	log.Printf("Email relay listening on :%s", port)
	if err := http.ListenAndServe(":"+port, c.Handler(handler)); err != nil {
		log.Fatalf("Relay server failed: %v", err)
	}
}
