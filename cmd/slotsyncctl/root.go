package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// slotsyncctl is a thin admin client for the coordinator API.

var (
	coordinatorURL string
	requestTimeout time.Duration
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slotsyncctl",
		Short: "Admin client for the slotsync coordinator",
	}
	root.PersistentFlags().StringVar(&coordinatorURL, "coordinator-url", "http://localhost:8003", "base URL of the coordinator")
	root.PersistentFlags().DurationVar(&requestTimeout, "timeout", 90*time.Second, "request timeout")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newResetCmd())

	return root
}

func newMatchCmd() *cobra.Command {
	var (
		participants []string
		duration     int
		searchDays   int
		strategy     string
		label        string
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Run one coordination attempt and print the outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := map[string]any{
				"participant_ids":  participants,
				"duration_minutes": duration,
			}
			if searchDays > 0 {
				payload["search_days"] = searchDays
			}
			if strategy != "" {
				payload["strategy"] = strategy
			}
			if label != "" {
				payload["label"] = label
			}
			return call(cmd.OutOrStdout(), http.MethodPost, "/api/matches", payload)
		},
	}
	cmd.Flags().StringSliceVar(&participants, "participants", []string{"bean", "joy"}, "participant IDs to coordinate")
	cmd.Flags().IntVar(&duration, "duration", 120, "slot duration in minutes")
	cmd.Flags().IntVar(&searchDays, "days", 0, "how many days ahead to search (0 = coordinator default)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "slot selection strategy (earliest, afternoon)")
	cmd.Flags().StringVar(&label, "label", "", "label for the booked appointment")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show liveness of every configured participant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd.OutOrStdout(), http.MethodGet, "/api/participants/status", nil)
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <participant>",
		Short: "Reset one participant's diary to its default template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd.OutOrStdout(), http.MethodPost, "/api/participants/"+args[0]+"/reset", nil)
		},
	}
}

func call(out io.Writer, method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, strings.TrimRight(coordinatorURL, "/")+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := &http.Client{Timeout: requestTimeout}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if json.Indent(&pretty, raw, "", "  ") == nil {
		raw = pretty.Bytes()
	}
	fmt.Fprintln(out, string(raw))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("coordinator returned status %d", resp.StatusCode)
	}
	return nil
}
