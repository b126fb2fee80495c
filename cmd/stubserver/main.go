// Command stubserver runs an in-memory patients backend implementing the
// REST contract the client expects. Intended for local development and
// demos; all data is lost on shutdown.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/aahadaazar/patients-app/internal/stubserver"
)

func main() {
	addr := flag.String("a", ":8080", "listen address")
	seed := flag.Int("seed", 25, "number of fake patients to seed")
	key := flag.String("key", "dev-signing-key", "JWT signing key")
	flag.Parse()

	s := stubserver.New([]byte(*key))
	if *seed > 0 {
		s.Seed(*seed)
	}

	log.Printf("stub patients backend listening on %s (%d patients seeded)", *addr, *seed)
	if err := http.ListenAndServe(*addr, s.Router()); err != nil {
		log.Fatalf("%v", err)
	}
}
