// Command crustabri is an abstract argumentation reasoner: it reads an
// AAF (or, via the ABA front end, an assumption-based framework) from a
// file and answers one SE/DC/DS query against a chosen semantics.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
