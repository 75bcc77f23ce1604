package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/finboard/finboard/renderer"
	"github.com/google/subcommands"
)

// notifyCmd holds the flags for the 'notifications' subcommand.
type notifyCmd struct {
	date    string
	read    string
	readAll bool
}

func (*notifyCmd) Name() string     { return "notifications" }
func (*notifyCmd) Synopsis() string { return "display the notification panel" }
func (*notifyCmd) Usage() string {
	return `fin notifications [-d <date>] [-read <id> | -read-all]

  Displays the notification panel with the unread count. -read marks a
  single notification as read for this listing, -read-all marks them
  all.
`
}

func (c *notifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finboard.Today().String(), "Reference date for relative timestamps.")
	f.StringVar(&c.read, "read", "", "Id of a notification to mark as read.")
	f.BoolVar(&c.readAll, "read-all", false, "Mark every notification as read.")
}

func (c *notifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finboard.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ds, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	center := finboard.NewNotificationCenter(ds.Notifications)

	switch {
	case c.readAll:
		center.MarkAllRead()
	case c.read != "":
		if err := center.MarkRead(c.read); err != nil {
			fmt.Fprintf(os.Stderr, "Error: notification %q: %v\n", c.read, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Notifications(newFormatter(), on, center))
	return subcommands.ExitSuccess
}
