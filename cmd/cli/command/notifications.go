package command

import (
	"fmt"

	"agencyhub/cmd/cli/authentication"
	"agencyhub/cmd/cli/command/client"
	"agencyhub/cmd/cli/command/state"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// notifications.go surfaces the aggregated feed and the realtime watch
// mode. Viewed state lives on this device only.

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Notification feed commands",
	Long:  `Read your aggregated notification feed and watch the realtime update channel.`,
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your notification feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		markViewed, _ := cmd.Flags().GetBool("mark-viewed")

		feed, viewed, err := fetchFeed()
		if err != nil {
			return err
		}

		if len(feed.Items) == 0 {
			fmt.Println("No notifications.")
			return nil
		}

		unread := 0
		liveIDs := make([]string, 0, len(feed.Items))
		for _, item := range feed.Items {
			liveIDs = append(liveIDs, item.ID)

			line := fmt.Sprintf("[%s] %s  (%s)", item.Label, item.Title, item.CreatedAt.Format("Jan 2 15:04"))
			if viewed.Viewed[item.ID] {
				fmt.Println("  " + line)
			} else {
				unread++
				color.New(color.Bold).Println("• " + line)
			}
		}
		fmt.Printf("\n%d notifications, %d unread\n", len(feed.Items), unread)

		if markViewed {
			viewed.MarkViewed(liveIDs...)
			viewed.Prune(liveIDs)
			if err := state.SaveViewedState(viewed); err != nil {
				return fmt.Errorf("could not save viewed state: %w", err)
			}
		}
		return nil
	},
}

var notificationsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the realtime update channel",
	Long: `Connect to the broadcast channel and print every update as it happens.
After each event the feed is re-fetched so the unread count stays current.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := ""
		if creds, err := authentication.GetTokens(); err == nil {
			token = creds.AccessToken
		}

		return client.WatchUpdates(apiURL, token, func(event string) {
			if token == "" {
				return
			}
			feed, viewed, err := fetchFeed()
			if err != nil {
				return
			}
			unread := 0
			for _, item := range feed.Items {
				if !viewed.Viewed[item.ID] {
					unread++
				}
			}
			fmt.Printf("   feed: %d notifications, %d unread\n", len(feed.Items), unread)
		})
	},
}

var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the local viewed state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := state.ClearViewedState(); err != nil {
			return err
		}
		fmt.Println("✓ Viewed state cleared; everything is unread again.")
		return nil
	},
}

func fetchFeed() (*client.FeedResponse, *state.ViewedState, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, nil, fmt.Errorf("not logged in: run 'agencyhub auth login' first")
	}

	httpClient := client.NewHTTPClient(apiURL)
	httpClient.SetToken(creds.AccessToken)

	feed, err := httpClient.Notifications()
	if err != nil {
		return nil, nil, fmt.Errorf("could not fetch feed: %w", err)
	}

	viewed, err := state.LoadViewedState()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load viewed state: %w", err)
	}
	return feed, viewed, nil
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsWatchCmd)
	notificationsCmd.AddCommand(notificationsClearCmd)

	notificationsListCmd.Flags().Bool("mark-viewed", false, "Mark every listed notification as viewed")

	rootCmd.AddCommand(notificationsCmd)
}
