package changeset

import (
	"context"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	"github.com/pkg/errors"
)

// ErrCollector classifies environment failures while building the change
// set. Callers map it to a distinct exit code so tooling failures are not
// mistaken for validation rejections.
var ErrCollector = errors.New("collecting change set")

type Collector struct {
	root string
}

func NewCollector(root string) *Collector {
	return &Collector{root: root}
}

// Collect diffs the merge base of baseRef/headRef against headRef and
// returns every touched path: added and modified files by their new name,
// deleted files by their old one. Full history is a precondition; shallow
// clones are rejected.
func (c *Collector) Collect(ctx context.Context, baseRef, headRef string) (ChangeSet, error) {
	repo, err := git.PlainOpenWithOptions(c.root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, collectorErr(err, "opening repository at "+c.root)
	}

	if shallow, err := repo.Storer.Shallow(); err == nil && len(shallow) > 0 {
		return nil, errors.Wrap(ErrCollector, "repository is a shallow clone, full history is required")
	}

	base, err := c.resolveCommit(repo, baseRef)
	if err != nil {
		return nil, err
	}

	head, err := c.resolveCommit(repo, headRef)
	if err != nil {
		return nil, err
	}

	mergeBases, err := base.MergeBase(head)
	if err != nil {
		return nil, collectorErr(err, "finding merge base")
	}
	if len(mergeBases) == 0 {
		return nil, errors.Wrapf(ErrCollector, "no merge base between %s and %s", baseRef, headRef)
	}

	baseTree, err := mergeBases[0].Tree()
	if err != nil {
		return nil, collectorErr(err, "reading base tree")
	}

	headTree, err := head.Tree()
	if err != nil {
		return nil, collectorErr(err, "reading head tree")
	}

	changes, err := object.DiffTreeWithOptions(ctx, baseTree, headTree, &object.DiffTreeOptions{})
	if err != nil {
		return nil, collectorErr(err, "diffing trees")
	}

	paths := make([]string, 0, len(changes))
	for _, ch := range changes {
		action, err := ch.Action()
		if err != nil {
			return nil, collectorErr(err, "classifying change")
		}

		switch action {
		case merkletrie.Insert, merkletrie.Modify:
			paths = append(paths, ch.To.Name)
		case merkletrie.Delete:
			// a removed file still counts as touched; deleting the
			// genesis file must trip the immutability rule
			paths = append(paths, ch.From.Name)
		}
	}

	return New(paths...), nil
}

func (c *Collector) resolveCommit(repo *git.Repository, rev string) (*object.Commit, error) {
	h, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, collectorErr(err, "resolving ref "+rev)
	}

	commit, err := repo.CommitObject(*h)
	if err != nil {
		return nil, collectorErr(err, "reading commit "+h.String())
	}

	return commit, nil
}

func collectorErr(err error, msg string) error {
	return errors.Wrapf(ErrCollector, "%s: %v", msg, err)
}
