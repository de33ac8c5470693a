package main

import (
	"context"
	"time"

	cron "gopkg.in/robfig/cron.v2"
)

func startCrons(deps *Deps) {
	c := cron.New()

	c.AddFunc("TZ=Europe/London 0 07 * * *", func() {
		runLeaverSweep(deps)
	})

	InfoLog.Println("starting crons")

	c.Start()
}

// runLeaverSweep is the batch version of the leaver flow: read the
// schedule, suspend every Google Workspace leaver whose date has passed
// and dispatch every AWS leaver to the deprovisioning API. One bad leaver
// is logged and skipped, it does not stop the sweep.
func runLeaverSweep(deps *Deps) {
	ctx := context.Background()
	now := time.Now()

	source, err := deps.leavers(ctx)
	if err != nil {
		ErrorLog.Println("leaver sweep: ", err)
		return
	}

	rows, err := source.ReadLeaverRows(ctx)
	if err != nil {
		ErrorLog.Println("leaver sweep read: ", err)
		return
	}

	lists, err := extractLeavers(rows, now)
	if err != nil {
		ErrorLog.Println("leaver sweep extract: ", err)
		return
	}

	dir, err := deps.directory(ctx)
	if err != nil {
		ErrorLog.Println("leaver sweep directory: ", err)
		return
	}

	for _, userEmail := range lists.GoogleWorkspace {
		user := dir.GetUser(ctx, userEmail)
		if user == nil {
			ErrorLog.Println("leaver sweep: no such user: ", userEmail)
			continue
		}
		if user.Suspended {
			InfoLog.Println("leaver sweep: already suspended: ", userEmail)
			continue
		}
		if err := dir.SuspendUser(ctx, userEmail); err != nil {
			ErrorLog.Println("leaver sweep suspend ", userEmail, ": ", err)
			continue
		}
		InfoLog.Println("leaver sweep: suspended ", userEmail)
	}

	for _, username := range lists.AWS {
		if _, err := deps.aws.DeprovisionUser(ctx, username); err != nil {
			ErrorLog.Println("leaver sweep AWS ", username, ": ", err)
			continue
		}
		InfoLog.Println("leaver sweep: deprovisioned AWS user ", username)
	}

	// GitHub leavers are only reported; offboarding there is handled by a
	// separate workflow with its own credentials.
	if len(lists.GitHub) > 0 {
		InfoLog.Println("leaver sweep: GitHub leavers pending: ", lists.GitHub)
	}
}
