package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/mathstronauts/scheduler/pkg/scheduler"

	"github.com/schollz/progressbar/v3"
)

func main() {
	// Define arguments
	sessionsPtr := flag.String("sessions", "", "Path to the sessions input file")
	prefsPtr := flag.String("prefs", "", "Path to the instructor-preferences input file")
	outPtr := flag.String("out", ".", "Directory where "+scheduler.ScheduleFileName+" will be written")
	configPtr := flag.String("config", "", "Path to a JSON options file; when given, it overrides the hyperparameter flags")
	epochsPtr := flag.Int("epochs", 100000, "Number of search epochs to run")
	replicatesPtr := flag.Int("replicates", 5, "Number of replicates (reserved; does not alter per-epoch generation)")
	attemptsPtr := flag.Int("attempts", 3, "Maximum assignment attempts per session (reserved; does not alter per-epoch generation)")
	seedPtr := flag.Int64("seed", 0, "Random seed, where 0 seeds from the current time")
	verbosePtr := flag.Bool("verbose", false, "Echo diagnostics and the final schedule after the search")
	flag.Parse()

	options := scheduler.Options{
		Epochs:      *epochsPtr,
		Replicates:  *replicatesPtr,
		MaxAttempts: *attemptsPtr,
		Verbose:     *verbosePtr,
		Seed:        *seedPtr,
	}
	if *configPtr != "" {
		var err error
		options, err = scheduler.OptionsFromJson(*configPtr)
		if err != nil {
			log.Fatalf("cannot parse options file: %v", err)
		}
	}

	// Validate arguments
	if *sessionsPtr == "" {
		log.Fatal("a sessions input file must be specified")
	} else if *prefsPtr == "" {
		log.Fatal("an instructor-preferences input file must be specified")
	} else if options.Epochs < 0 {
		log.Fatalf("epochs must not be negative: %v", options.Epochs)
	}

	// Extract input catalogs
	sessions, err := scheduler.LoadSessions(*sessionsPtr)
	if err != nil {
		log.Fatalf("cannot parse sessions file: %v", err)
	}
	preferences, err := scheduler.LoadPreferences(*prefsPtr)
	if err != nil {
		log.Fatalf("cannot parse instructor-preferences file: %v", err)
	}

	// Initialize engines
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	random := rand.New(rand.NewSource(seed))

	bar := progressbar.Default(int64(options.Epochs), "Epochs")
	search := scheduler.NewSearch(options, random, func(epoch, bestScore int) {
		_ = bar.Add(1)
	})

	// Run the search; an interrupt aborts between epochs and keeps the best so far
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := search.Run(ctx, sessions, preferences)
	if errors.Is(err, context.Canceled) {
		log.Printf("search interrupted, keeping the best assignment found so far")
	} else if err != nil {
		log.Fatalf("an error occurred during the search: %v", err)
	}

	// Project the best assignment into schedule rows
	rows, err := scheduler.Project(result.Assignment, sessions, preferences)
	if err != nil {
		log.Fatalf("cannot project the best assignment: %v", err)
	}

	if options.Verbose {
		ceiling, err := scheduler.MaxAssignable(sessions, preferences)
		if err != nil {
			log.Fatalf("cannot compute the assignment ceiling: %v", err)
		}
		fmt.Printf("Best score: %v\n", result.Score)
		fmt.Printf("Unfilled sessions: %v\n", scheduler.CountUnfilled(result.Assignment))
		fmt.Printf("Fillable ceiling: %v of %v sessions\n", ceiling, len(sessions))
		fmt.Print(scheduler.FormatRows(rows))
	}

	if err := scheduler.WriteSchedule(*outPtr, rows); err != nil {
		log.Fatalf("an error occurred while writing the schedule: %v", err)
	}
}
