package cmi5

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/jsalter/cmi5quest/internal/store"
)

// Connect runs the launch sequence: validate parameters, exchange the
// fetch URL for a token, read LMS.LaunchData, start the bridge, and
// emit initialized. A failed LMS handshake degrades to standalone mode
// rather than blocking play; statements still land in the local log.
func Connect(ctx context.Context, p LaunchParams, log store.StatementRepo, hc *http.Client) (*Bridge, LaunchData, error) {
	if err := p.Validate(); err != nil {
		return nil, LaunchData{}, err
	}

	session := NewSession(p)
	launchData := LaunchData{LaunchMode: "Normal", MasteryScore: DefaultMasteryScore}

	var client *Client
	if !p.Standalone() {
		token, err := FetchAuthToken(ctx, p.Fetch, hc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: LMS handshake failed, continuing standalone: %v\n", err)
		} else {
			client = NewClient(p.Endpoint, token, hc)
			ld, err := client.FetchLaunchData(ctx, session.ActivityID(), session.Actor(), session.Registration())
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to fetch launch data: %v\n", err)
			} else {
				launchData = ld
				if err := session.SetContextTemplate(ld.ContextTemplate); err != nil {
					fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				}
			}
		}
	}

	bridge := NewBridge(session, client, log)
	bridge.Enqueue(session.Initialized())
	return bridge, launchData, nil
}
