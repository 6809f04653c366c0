// Package naughty maintains the persisted name-exclusion registry. The store
// is a flat JSON list read and rewritten wholesale; recipients on the list
// always receive an amount of zero.
package naughty

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// List is the naughty-list store bound to its backing file.
type List struct {
	Names []string `json:"names"`

	path string
}

// Load reads the naughty list at path. A missing file yields an empty list.
func Load(path string) (*List, error) {
	l := &List{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l, nil
		}
		return nil, fmt.Errorf("read naughty list: %w", err)
	}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse naughty list: %w", err)
	}

	return l, nil
}

// Save rewrites the backing file wholesale.
func (l *List) Save() error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal naughty list: %w", err)
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create naughty list directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(l.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write naughty list: %w", err)
	}
	return nil
}

// IsNaughty reports whether name is on the list. Matching is
// case-insensitive.
func (l *List) IsNaughty(name string) bool {
	for _, n := range l.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Add appends name to the list; it reports false if the name was already
// present.
func (l *List) Add(name string) bool {
	if l.IsNaughty(name) {
		return false
	}
	l.Names = append(l.Names, name)
	return true
}

// Remove deletes name from the list; it reports false if the name was not
// present.
func (l *List) Remove(name string) bool {
	for i, n := range l.Names {
		if strings.EqualFold(n, name) {
			l.Names = append(l.Names[:i], l.Names[i+1:]...)
			return true
		}
	}
	return false
}

// Run handles the naughty-list command tokens: "add <name>",
// "remove <name>", "list", or a bare name as shorthand for add. Output goes
// to w; state changes are persisted before returning.
func Run(args []string, path string, w io.Writer) error {
	list, err := Load(path)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("naughty-list requires a name or one of: add, remove, list")
	}

	switch args[0] {
	case "list":
		if err := rejectExtraTokens(args[1:]); err != nil {
			return err
		}
		if len(list.Names) == 0 {
			fmt.Fprintln(w, "The naughty list is empty")
			return nil
		}
		for _, n := range list.Names {
			fmt.Fprintln(w, n)
		}
		return nil
	case "add":
		name, err := nameArg(args[1:])
		if err != nil {
			return err
		}
		return addName(list, name, w)
	case "remove":
		name, err := nameArg(args[1:])
		if err != nil {
			return err
		}
		if !list.Remove(name) {
			fmt.Fprintf(w, "%s is not on the naughty list\n", name)
			return nil
		}
		if err := list.Save(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Removed %s from the naughty list\n", name)
		return nil
	default:
		if strings.HasPrefix(args[0], "-") {
			return fmt.Errorf("Unknown flag: %s", args[0])
		}
		// Bare name shorthand for add.
		name := strings.TrimSpace(strings.Join(args, " "))
		return addName(list, name, w)
	}
}

func addName(list *List, name string, w io.Writer) error {
	if !list.Add(name) {
		fmt.Fprintf(w, "%s is already on the naughty list\n", name)
		return nil
	}
	if err := list.Save(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Added %s to the naughty list\n", name)
	return nil
}

func nameArg(rest []string) (string, error) {
	for _, tok := range rest {
		if strings.HasPrefix(tok, "-") {
			return "", fmt.Errorf("Unknown flag: %s", tok)
		}
	}
	name := strings.TrimSpace(strings.Join(rest, " "))
	if name == "" {
		return "", fmt.Errorf("naughty-list requires a name")
	}
	return name, nil
}

func rejectExtraTokens(rest []string) error {
	if len(rest) == 0 {
		return nil
	}
	return fmt.Errorf("Unknown flag: %s", rest[0])
}
