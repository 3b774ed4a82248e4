package audit

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/pkg/errors"
)

// ledgerFile collects every recorded event inside the working directory so
// that each record produces a real change for the commit to capture.
const ledgerFile = "journal.log"

type Author struct {
	Name  string
	Email string
}

// Journal mirrors inventory and purchase events as commits in a git working
// directory. It is a best-effort side channel: callers log failures and move
// on, the primary data store is never held hostage by the mirror.
type Journal struct {
	repo   *git.Repository
	path   string
	author Author
}

// Open opens the git repository at path, initializing a fresh one if the
// directory is not a repository yet.
func Open(path string, author Author) (*Journal, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(path, false)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open audit repository at %s", path)
	}
	return &Journal{repo: repo, path: path, author: author}, nil
}

// CommitAll stages every change in the working directory and commits it with
// the given message. Returns false without committing when there is nothing
// to record.
func (j *Journal) CommitAll(message string) (bool, error) {
	wt, err := j.repo.Worktree()
	if err != nil {
		return false, errors.Wrap(err, "failed to open worktree")
	}

	status, err := wt.Status()
	if err != nil {
		return false, errors.Wrap(err, "failed to read worktree status")
	}
	if status.IsClean() {
		return false, nil
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, errors.Wrap(err, "failed to stage changes")
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  j.author.Name,
			Email: j.author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to commit changes")
	}
	return true, nil
}

// RecordPurchase appends a purchase entry to the ledger and commits it.
func (j *Journal) RecordPurchase(customerName string, items []PurchaseEntry) (bool, error) {
	message := purchaseMessage(customerName, items, time.Now())
	if err := j.appendLedger(message); err != nil {
		return false, err
	}
	return j.CommitAll(message)
}

// RecordInventoryChange appends an inventory update entry to the ledger and
// commits it.
func (j *Journal) RecordInventoryChange(changes []InventoryChange) (bool, error) {
	message := inventoryMessage(changes, time.Now())
	if err := j.appendLedger(message); err != nil {
		return false, err
	}
	return j.CommitAll(message)
}

// List walks commit history newest-first and returns up to limit messages
// whose text starts with prefix. An empty repository yields no entries.
func (j *Journal) List(prefix string, limit int) ([]string, error) {
	iter, err := j.repo.Log(&git.LogOptions{})
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read commit history")
	}

	var entries []string
	err = iter.ForEach(func(c *object.Commit) error {
		if len(entries) >= limit {
			return storer.ErrStop
		}
		if strings.HasPrefix(c.Message, prefix) {
			entries = append(entries, c.Message)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to walk commit history")
	}
	return entries, nil
}

func (j *Journal) appendLedger(message string) error {
	f, err := os.OpenFile(filepath.Join(j.path, ledgerFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open journal ledger")
	}
	defer f.Close()

	if _, err := f.WriteString(message + "\n"); err != nil {
		return errors.Wrap(err, "failed to append to journal ledger")
	}
	return nil
}
