// Command bnetscraper scrapes StarCraft II account pages from the Battle.net armory.
//
// Usage:
//
//	bnetscraper profile http://us.battle.net/sc2/en/profile/2377239/1/Demon/
//	bnetscraper full 2377239 Demon --gateway us
//	bnetscraper league 2377239 Demon 12345
//	bnetscraper status eu
//
// Settings may also come from a .env file in the working directory.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := newFlags()
	err := newRootCmd(f).ExecuteContext(ctx)
	f.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
