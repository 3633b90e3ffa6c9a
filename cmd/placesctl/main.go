package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - stats:       Mirror statistics compared with the database
// - sync:        Write a database snapshot to the Excel mirror
// - resync:      Rebuild the mirror with a backup
// - collections: List API collections and their categories
// - execute:     Run one collection endpoint
// - ingest:      Backfill places from nearby searches

func main() {
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	syncCmd := flag.NewFlagSet("sync", flag.ExitOnError)
	resyncCmd := flag.NewFlagSet("resync", flag.ExitOnError)
	collectionsCmd := flag.NewFlagSet("collections", flag.ExitOnError)
	executeCmd := flag.NewFlagSet("execute", flag.ExitOnError)
	ingestCmd := flag.NewFlagSet("ingest", flag.ExitOnError)

	// execute parameters
	executeCollection := executeCmd.String("collection", "", "Collection file or name")
	executeEndpoint := executeCmd.String("endpoint", "", "Endpoint name, e.g. \"1) Geocode - GET\"")
	executeParams := paramFlag{}
	executeCmd.Var(executeParams, "param", "Request parameter as key=value (repeatable)")

	// ingest parameters
	ingestCollection := ingestCmd.String("collection", "", "Collection holding the nearby-search and details endpoints")
	ingestLocations := &locationFlag{}
	ingestCmd.Var(ingestLocations, "location", "Search centre as lat,lon[,pincode] (repeatable)")
	ingestTypes := ingestCmd.String("types", "", "Comma separated place types")
	ingestRadius := ingestCmd.Int("radius", 0, "Search radius in metres")
	ingestRankBy := ingestCmd.String("rank-by", "", "Ranking: popular or distance")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Stats:       statsCmd,
		Sync:        syncCmd,
		Resync:      resyncCmd,
		Collections: collectionsCmd,
		Execute: executeFlags{
			cmd:        executeCmd,
			collection: executeCollection,
			endpoint:   executeEndpoint,
			params:     executeParams,
		},
		Ingest: ingestFlags{
			cmd:        ingestCmd,
			collection: ingestCollection,
			locations:  ingestLocations,
			types:      ingestTypes,
			radius:     ingestRadius,
			rankBy:     ingestRankBy,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Stats       *flag.FlagSet
	Sync        *flag.FlagSet
	Resync      *flag.FlagSet
	Collections *flag.FlagSet
	Execute     executeFlags
	Ingest      ingestFlags
}

type executeFlags struct {
	cmd        *flag.FlagSet
	collection *string
	endpoint   *string
	params     paramFlag
}

type ingestFlags struct {
	cmd        *flag.FlagSet
	collection *string
	locations  *locationFlag
	types      *string
	radius     *int
	rankBy     *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "stats":
		return withParsed(flags.Stats, func() error { return runStats(ctx) })
	case "sync":
		return withParsed(flags.Sync, func() error { return runSync(ctx, false) })
	case "resync":
		return withParsed(flags.Resync, func() error { return runSync(ctx, true) })
	case "collections":
		return withParsed(flags.Collections, func() error { return runCollections(ctx) })
	case "execute":
		return handleExecute(ctx, flags)
	case "ingest":
		return handleIngest(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func withParsed(cmd *flag.FlagSet, run func() error) error {
	if err := cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", cmd.Name())
	}

	return run()
}

func handleExecute(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Execute.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse execute flags")
	}

	if *flags.Execute.collection == "" || *flags.Execute.endpoint == "" {
		return errors.New("--collection and --endpoint flags are required for execute command")
	}

	return runExecute(ctx, *flags.Execute.collection, *flags.Execute.endpoint, flags.Execute.params)
}

func handleIngest(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Ingest.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse ingest flags")
	}

	if len(flags.Ingest.locations.values) == 0 {
		return errors.New("at least one --location flag is required for ingest command")
	}

	return runIngest(ctx, ingestOptions{
		collection: *flags.Ingest.collection,
		locations:  flags.Ingest.locations.values,
		types:      splitList(*flags.Ingest.types),
		radius:     *flags.Ingest.radius,
		rankBy:     *flags.Ingest.rankBy,
	})
}

func printUsage() {
	fmt.Println("Usage: placesctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  stats        Show Excel mirror statistics")
	fmt.Println("  sync         Sync the Excel mirror from the database")
	fmt.Println("  resync       Force a full mirror rebuild with backup")
	fmt.Println("  collections  List API test collections")
	fmt.Println("  execute      Execute one collection endpoint")
	fmt.Println("  ingest       Ingest places from nearby searches")
	fmt.Println("")
	fmt.Println("Use 'placesctl <command> -h' for more information about a command.")
}
