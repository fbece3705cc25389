package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jacksmith/shoplist/internal/model"
	"github.com/jacksmith/shoplist/internal/ops"
	"gopkg.in/yaml.v3"
)

const itemFormHeader = "# Edit the item below. Save and close the editor to apply.\n"

// itemForm is the YAML document shown in $EDITOR.
// Quantity is untyped so that non-numeric input reaches validation.
type itemForm struct {
	Name     string      `yaml:"name"`
	Quantity interface{} `yaml:"quantity"`
	Category string      `yaml:"category"`
}

// EncodeItemForm renders item as the YAML form used by EditItem.
func EncodeItemForm(item model.ShoppingItem) ([]byte, error) {
	data, err := yaml.Marshal(itemForm{
		Name:     item.Name,
		Quantity: item.Quantity,
		Category: string(item.Category),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}
	return append([]byte(itemFormHeader), data...), nil
}

// DecodeItemForm parses an edited form back into raw item input.
// Field values are not validated here.
func DecodeItemForm(data []byte) (ops.ItemInput, error) {
	var form itemForm
	if err := yaml.Unmarshal(data, &form); err != nil {
		return ops.ItemInput{}, fmt.Errorf("failed to parse edited item: %w", err)
	}

	in := ops.ItemInput{Name: form.Name, Category: form.Category}
	if form.Quantity != nil {
		in.Quantity = fmt.Sprint(form.Quantity)
	}
	return in, nil
}

// EditItem opens item in $EDITOR and returns the edited fields.
func EditItem(item model.ShoppingItem) (ops.ItemInput, error) {
	content, err := EncodeItemForm(item)
	if err != nil {
		return ops.ItemInput{}, err
	}

	edited, err := EditInEditor(content, ".yaml")
	if err != nil {
		return ops.ItemInput{}, err
	}

	if bytes.Equal(edited, content) {
		return ops.ItemInput{}, fmt.Errorf("no changes made")
	}

	return DecodeItemForm(edited)
}

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file (e.g., ".yaml" for syntax highlighting).
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use --name/--quantity/--category instead of -i")
	}

	tmpFile, err := os.CreateTemp("", "shop-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// getEditor returns the editor command from environment.
// VISUAL wins over EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
// The editor string may carry arguments, e.g. "code --wait".
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
