package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/jacksmith/shoplist/internal/model"
	"github.com/jacksmith/shoplist/internal/ops"
	"github.com/jacksmith/shoplist/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eggsJSON = `[{"Name":"Eggs","Quantity":12,"Category":"Dairy"}]`

const sampleJSON = `[
  {"Name":"Milk","Quantity":2,"Category":"Dairy"},
  {"Name":"Bread","Quantity":1,"Category":"Bakery"},
  {"Name":"Apples","Quantity":6,"Category":"Produce"},
  {"Name":"Oat milk","Quantity":1,"Category":"Dairy"}
]`

// setupTestDir points the CLI at a fresh temporary directory.
func setupTestDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	rootDir = dir
	dataFile = ""
	cli.SetColorEnabled(false)

	t.Cleanup(func() {
		rootDir = "."
		dataFile = ""
	})
	return dir
}

// setupTestDirWithData creates a temporary directory holding a list file.
func setupTestDirWithData(t *testing.T, content string) string {
	t.Helper()

	dir := setupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.DefaultDataFile), []byte(content), 0644))
	return dir
}

// loadItems reads the list file in dir.
func loadItems(t *testing.T, dir string) []model.ShoppingItem {
	t.Helper()

	items, err := model.LoadList(filepath.Join(dir, storage.DefaultDataFile))
	require.NoError(t, err)
	return items
}

// captureOutput runs fn and returns what it printed to stdout.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

// resetFlags restores every flag on cmd to its default and clears Changed.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

func TestAddCommand(t *testing.T) {
	t.Run("first add creates the file", func(t *testing.T) {
		dir := setupTestDir(t)
		resetFlags(t, addCmd)

		output, err := captureOutput(t, func() error {
			return runAdd(addCmd, []string{"Milk", "2", "Dairy"})
		})
		require.NoError(t, err)

		assert.Contains(t, output, "Item added successfully.")
		assert.Contains(t, output, "#1 2 x Milk [Dairy]")

		data, err := os.ReadFile(filepath.Join(dir, storage.DefaultDataFile))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"Name":"Milk","Quantity":2,"Category":"Dairy"}]`, string(data))
	})

	t.Run("appends to existing list", func(t *testing.T) {
		dir := setupTestDirWithData(t, eggsJSON)
		resetFlags(t, addCmd)

		_, err := captureOutput(t, func() error {
			return runAdd(addCmd, []string{"Bread", "1", "bak"})
		})
		require.NoError(t, err)

		items := loadItems(t, dir)
		require.Len(t, items, 2)
		assert.Equal(t, "Eggs", items[0].Name)
		assert.Equal(t, model.ShoppingItem{Name: "Bread", Quantity: 1, Category: model.CategoryBakery}, items[1])
	})

	t.Run("category flag", func(t *testing.T) {
		dir := setupTestDir(t)
		resetFlags(t, addCmd)
		addCategory = "produce"

		_, err := captureOutput(t, func() error {
			return runAdd(addCmd, []string{"Apples", "6"})
		})
		require.NoError(t, err)
		assert.Equal(t, model.CategoryProduce, loadItems(t, dir)[0].Category)
	})

	invalid := []struct {
		name string
		args []string
		msg  string
	}{
		{"zero quantity", []string{"Milk", "0", "Dairy"}, "Please enter a valid quantity."},
		{"non-numeric quantity", []string{"Milk", "two", "Dairy"}, "Please enter a valid quantity."},
		{"blank name", []string{" ", "2", "Dairy"}, "Please enter an item name."},
		{"missing category", []string{"Milk", "2"}, "Please choose a category."},
		{"unknown category", []string{"Milk", "2", "Toys"}, `unknown category "Toys"`},
	}

	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			dir := setupTestDirWithData(t, eggsJSON)
			resetFlags(t, addCmd)

			_, err := captureOutput(t, func() error {
				return runAdd(addCmd, tt.args)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)

			var verr *ops.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Len(t, loadItems(t, dir), 1)
		})
	}

	t.Run("corrupt file is reported and not overwritten", func(t *testing.T) {
		dir := setupTestDirWithData(t, "{not json")
		resetFlags(t, addCmd)

		_, err := captureOutput(t, func() error {
			return runAdd(addCmd, []string{"Milk", "2", "Dairy"})
		})
		var perr *ops.PersistError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "load", perr.Op)

		data, err := os.ReadFile(filepath.Join(dir, storage.DefaultDataFile))
		require.NoError(t, err)
		assert.Equal(t, "{not json", string(data))
	})

	t.Run("show_after_change prints the list", func(t *testing.T) {
		dir := setupTestDirWithData(t, eggsJSON)
		resetFlags(t, addCmd)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".shoplist.yaml"), []byte("show_after_change: true\n"), 0644))

		output, err := captureOutput(t, func() error {
			return runAdd(addCmd, []string{"Milk", "2", "Dairy"})
		})
		require.NoError(t, err)
		assert.Contains(t, output, "QTY")
		assert.Contains(t, output, "Eggs")
		assert.Contains(t, output, "Milk")
	})
}

func TestListCommand(t *testing.T) {
	t.Run("loads persisted items exactly", func(t *testing.T) {
		setupTestDirWithData(t, eggsJSON)
		resetFlags(t, listCmd)

		output, err := captureOutput(t, func() error { return runList(listCmd, nil) })
		require.NoError(t, err)

		assert.Contains(t, output, "Eggs")
		assert.Contains(t, output, "12")
		assert.Contains(t, output, "Dairy")
		assert.Contains(t, output, "1 item, 12 total")
	})

	t.Run("no file shows empty list without error", func(t *testing.T) {
		setupTestDir(t)
		resetFlags(t, listCmd)

		output, err := captureOutput(t, func() error { return runList(listCmd, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "Shopping list is empty.")
	})

	t.Run("category filter keeps positions", func(t *testing.T) {
		setupTestDirWithData(t, sampleJSON)
		resetFlags(t, listCmd)
		listCategory = "dairy"

		output, err := captureOutput(t, func() error { return runList(listCmd, nil) })
		require.NoError(t, err)

		assert.Contains(t, output, "Milk")
		assert.Contains(t, output, "Oat milk")
		assert.NotContains(t, output, "Bread")
		assert.NotContains(t, output, "Apples")
	})

	t.Run("category with no items", func(t *testing.T) {
		setupTestDirWithData(t, sampleJSON)
		resetFlags(t, listCmd)
		listCategory = "frozen"

		output, err := captureOutput(t, func() error { return runList(listCmd, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "No items in Frozen.")
	})

	t.Run("explicit --file", func(t *testing.T) {
		setupTestDir(t)
		resetFlags(t, listCmd)
		path := filepath.Join(t.TempDir(), "other.json")
		require.NoError(t, os.WriteFile(path, []byte(eggsJSON), 0644))
		dataFile = path

		output, err := captureOutput(t, func() error { return runList(listCmd, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "Eggs")
	})
}

func TestEditCommand(t *testing.T) {
	t.Run("changes only given fields in place", func(t *testing.T) {
		dir := setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)
		require.NoError(t, editCmd.Flags().Set("quantity", "3"))

		output, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"2"}) })
		require.NoError(t, err)
		assert.Contains(t, output, "Item updated successfully.")

		items := loadItems(t, dir)
		require.Len(t, items, 4)
		assert.Equal(t, model.ShoppingItem{Name: "Bread", Quantity: 3, Category: model.CategoryBakery}, items[1])
		assert.Equal(t, "Milk", items[0].Name)
		assert.Equal(t, "Apples", items[2].Name)
	})

	t.Run("category prefix is expanded", func(t *testing.T) {
		dir := setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)
		require.NoError(t, editCmd.Flags().Set("category", "fro"))
		require.NoError(t, editCmd.Flags().Set("name", "Frozen peas"))

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"3"}) })
		require.NoError(t, err)

		items := loadItems(t, dir)
		assert.Equal(t, model.ShoppingItem{Name: "Frozen peas", Quantity: 6, Category: model.CategoryFrozen}, items[2])
	})

	t.Run("no changes is an error", func(t *testing.T) {
		setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"1"}) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no changes specified")
	})

	t.Run("no selection is an error", func(t *testing.T) {
		dir := setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)
		require.NoError(t, editCmd.Flags().Set("quantity", "3"))

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"0"}) })
		require.Error(t, err)
		assert.Equal(t, "Please select an item to edit.", err.Error())
		assert.Equal(t, 2, loadItems(t, dir)[0].Quantity)
	})

	t.Run("out of range position", func(t *testing.T) {
		setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)
		require.NoError(t, editCmd.Flags().Set("quantity", "3"))

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"9"}) })
		var serr *ops.SelectionError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "item 9 not found")
	})

	t.Run("invalid position text", func(t *testing.T) {
		setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"milk"}) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid position")
	})

	t.Run("invalid quantity leaves item unchanged", func(t *testing.T) {
		dir := setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)
		require.NoError(t, editCmd.Flags().Set("quantity", "-1"))

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"1"}) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Please enter a valid quantity.")
		assert.Equal(t, 2, loadItems(t, dir)[0].Quantity)
	})

	t.Run("interactive edit uses editor output", func(t *testing.T) {
		dir := setupTestDirWithData(t, sampleJSON)
		resetFlags(t, editCmd)
		require.NoError(t, editCmd.Flags().Set("interactive", "true"))

		script := filepath.Join(t.TempDir(), "editor.sh")
		body := "#!/bin/sh\nprintf 'name: Sourdough\\nquantity: 2\\ncategory: bakery\\n' > \"$1\"\n"
		require.NoError(t, os.WriteFile(script, []byte(body), 0755))
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", script)

		_, err := captureOutput(t, func() error { return runEdit(editCmd, []string{"#2"}) })
		require.NoError(t, err)

		items := loadItems(t, dir)
		assert.Equal(t, model.ShoppingItem{Name: "Sourdough", Quantity: 2, Category: model.CategoryBakery}, items[1])
	})
}

func TestRemoveCommand(t *testing.T) {
	t.Run("removes selected item", func(t *testing.T) {
		dir := setupTestDirWithData(t, sampleJSON)

		output, err := captureOutput(t, func() error { return runRemove(removeCmd, []string{"1"}) })
		require.NoError(t, err)
		assert.Contains(t, output, "Item removed successfully.")
		assert.Contains(t, output, "Milk")

		items := loadItems(t, dir)
		require.Len(t, items, 3)
		assert.Equal(t, "Bread", items[0].Name)
	})

	t.Run("removing last item leaves empty array", func(t *testing.T) {
		dir := setupTestDirWithData(t, eggsJSON)

		_, err := captureOutput(t, func() error { return runRemove(removeCmd, []string{"1"}) })
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, storage.DefaultDataFile))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("position out of range", func(t *testing.T) {
		dir := setupTestDirWithData(t, eggsJSON)

		_, err := captureOutput(t, func() error { return runRemove(removeCmd, []string{"2"}) })
		require.Error(t, err)
		assert.Len(t, loadItems(t, dir), 1)
	})

	t.Run("no selection", func(t *testing.T) {
		setupTestDirWithData(t, eggsJSON)

		_, err := captureOutput(t, func() error { return runRemove(removeCmd, []string{"0"}) })
		require.Error(t, err)
		assert.Equal(t, "Please select an item to remove.", err.Error())
	})
}

func TestShowCommand(t *testing.T) {
	setupTestDirWithData(t, sampleJSON)

	output, err := captureOutput(t, func() error { return runShow(showCmd, []string{"3"}) })
	require.NoError(t, err)

	assert.Contains(t, output, "3 of 4")
	assert.Contains(t, output, "Apples")
	assert.Contains(t, output, "Produce")

	_, err = captureOutput(t, func() error { return runShow(showCmd, []string{"5"}) })
	assert.Error(t, err)
}

func TestFindCommand(t *testing.T) {
	setupTestDirWithData(t, sampleJSON)

	output, err := captureOutput(t, func() error { return runFind(findCmd, []string{"MILK"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Milk")
	assert.Contains(t, output, "Oat milk")
	assert.NotContains(t, output, "Bread")

	output, err = captureOutput(t, func() error { return runFind(findCmd, []string{"cheese"}) })
	require.NoError(t, err)
	assert.Contains(t, output, `No results found for "cheese"`)
}

func TestDumpCommand(t *testing.T) {
	setupTestDirWithData(t, sampleJSON)

	output, err := captureOutput(t, func() error { return runDump(dumpCmd, nil) })
	require.NoError(t, err)

	expected := `# Shopping list
# 4 items, 10 total

## Dairy
- [ ] Milk (2)
- [ ] Oat milk (1)

## Bakery
- [ ] Bread (1)

## Produce
- [ ] Apples (6)
`
	assert.Equal(t, expected, output)
}

func TestCategoriesCommand(t *testing.T) {
	t.Run("lists defaults with counts", func(t *testing.T) {
		setupTestDirWithData(t, sampleJSON)

		output, err := captureOutput(t, func() error { return runCategories(categoriesCmd, nil) })
		require.NoError(t, err)

		for _, c := range model.DefaultCategories() {
			assert.Contains(t, output, string(c))
		}
		assert.Contains(t, output, "Dairy      2")
		assert.NotContains(t, output, "issue(s)")
	})

	t.Run("configured set and unknown category warning", func(t *testing.T) {
		dir := setupTestDirWithData(t, sampleJSON)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".shoplist.yaml"), []byte("categories: [Dairy, Snacks]\n"), 0644))

		output, err := captureOutput(t, func() error { return runCategories(categoriesCmd, nil) })
		require.NoError(t, err)

		assert.Contains(t, output, "Snacks")
		assert.NotContains(t, output, "Produce")
		assert.Contains(t, output, "2 issue(s)")
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("clean list", func(t *testing.T) {
		setupTestDirWithData(t, sampleJSON)

		output, err := captureOutput(t, func() error { return runValidate(validateCmd, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "No issues found.")
	})

	t.Run("hand-edited list with violations", func(t *testing.T) {
		setupTestDirWithData(t, `[{"Name":"","Quantity":0,"Category":"Dairy"},{"Name":"Socks","Quantity":1,"Category":"Clothing"}]`)

		output, err := captureOutput(t, func() error { return runValidate(validateCmd, nil) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "3 issue(s)")

		assert.Contains(t, output, "#1 [name]")
		assert.Contains(t, output, "#1 [quantity]")
		assert.Contains(t, output, "#2 [unknown-category]")
	})
}

func TestInitCommand(t *testing.T) {
	t.Run("creates empty list", func(t *testing.T) {
		dir := setupTestDir(t)

		output, err := captureOutput(t, func() error { return runInit(initCmd, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "Created empty shopping list")

		data, err := os.ReadFile(filepath.Join(dir, storage.DefaultDataFile))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("fails when list exists", func(t *testing.T) {
		setupTestDirWithData(t, eggsJSON)

		_, err := captureOutput(t, func() error { return runInit(initCmd, nil) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("explicit --file", func(t *testing.T) {
		setupTestDir(t)
		path := filepath.Join(t.TempDir(), "custom.json")
		dataFile = path

		_, err := captureOutput(t, func() error { return runInit(initCmd, nil) })
		require.NoError(t, err)
		assert.FileExists(t, path)

		_, err = captureOutput(t, func() error { return runInit(initCmd, nil) })
		assert.Error(t, err)
	})
}

func TestParsePosition(t *testing.T) {
	pos, err := parsePosition("3")
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	pos, err = parsePosition("#12")
	require.NoError(t, err)
	assert.Equal(t, 12, pos)

	_, err = parsePosition("three")
	assert.Error(t, err)
}

func TestCompletePositions(t *testing.T) {
	setupTestDirWithData(t, sampleJSON)

	completions, directive := completePositions(editCmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	require.Len(t, completions, 4)
	assert.Equal(t, "1\tMilk", completions[0])

	completions, _ = completePositions(editCmd, []string{"1"}, "")
	assert.Empty(t, completions)
}

func TestCompleteCategories(t *testing.T) {
	setupTestDir(t)

	completions, _ := completeCategories(addCmd, nil, "b")
	assert.Equal(t, []string{"Bakery", "Beverages"}, completions)

	completions, _ = completeAddArgs(addCmd, []string{"Milk", "2"}, "da")
	assert.Equal(t, []string{"Dairy"}, completions)

	completions, _ = completeAddArgs(addCmd, []string{"Milk"}, "")
	assert.Empty(t, completions)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Milk", truncate("Milk", 10))
	assert.Equal(t, "Paper t...", truncate("Paper towels", 10))
	assert.Equal(t, "Cr", truncate("Crème", 2))
}
