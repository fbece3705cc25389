package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/jacksmith/shoplist/internal/model"
	"github.com/jacksmith/shoplist/internal/ops"
	"github.com/jacksmith/shoplist/internal/storage"
)

// session is an open list plus the config it was opened with.
type session struct {
	store *ops.ListStore
	cfg   *storage.Config

	// refreshed holds the items from the most recent refresh.
	refreshed []model.ShoppingItem
}

// openStorage resolves the list file from --file or --dir.
func openStorage() (*storage.Storage, error) {
	if dataFile != "" {
		return storage.New(dataFile), nil
	}
	return storage.Open(rootDir)
}

// openSession opens storage and loads the list.
// A load failure aborts the command so a corrupt file is never overwritten.
func openSession() (*session, error) {
	s, err := openStorage()
	if err != nil {
		return nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	sess := &session{cfg: cfg}
	sess.store = ops.NewListStore(s, ops.StoreOptions{
		Categories: cfg.Categories,
		OnRefresh: func(items []model.ShoppingItem) {
			sess.refreshed = items
		},
	})

	if _, err := sess.store.Load(); err != nil {
		return nil, err
	}

	return sess, nil
}

// report prints the outcome of a mutation and, if configured, the list.
func (sess *session) report(res *ops.Result) {
	fmt.Println(cli.Green(res.Message))
	fmt.Printf("%s %s\n", cli.Gray(fmt.Sprintf("#%d", res.Position)), formatItem(res.Item))

	if sess.cfg.ShowAfterChange {
		fmt.Println()
		renderItems(sess.refreshed)
	}
}

// parsePosition converts a 1-based position argument.
func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid position %q (expected a number from 'shop list')", arg)
	}
	return pos, nil
}

// formatItem renders an item on one line, e.g. "2 x Milk [Dairy]".
func formatItem(item model.ShoppingItem) string {
	return fmt.Sprintf("%d x %s %s", item.Quantity, item.DisplayName(), cli.Cyan("["+string(item.Category)+"]"))
}

// renderItems prints items as a table with positions.
func renderItems(items []model.ShoppingItem) {
	matches := make([]ops.Match, len(items))
	for i, item := range items {
		matches[i] = ops.Match{Position: i + 1, Item: item}
	}
	renderMatches(matches)
}

// renderMatches prints matched items as a table.
func renderMatches(matches []ops.Match) {
	table := cli.NewTable()
	table.SetAlignRight(0)
	table.SetAlignRight(1)
	table.SetMaxWidth(3, cli.DefaultMaxNameWidth)
	table.AddRow(cli.Bold("#"), cli.Bold("QTY"), cli.Bold("CATEGORY"), cli.Bold("NAME"))
	for _, m := range matches {
		table.AddRow(
			cli.Gray(strconv.Itoa(m.Position)),
			strconv.Itoa(m.Item.Quantity),
			cli.Cyan(string(m.Item.Category)),
			m.Item.DisplayName(),
		)
	}
	table.Render(os.Stdout)
}
