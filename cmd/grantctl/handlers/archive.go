package handlers

import (
	"context"
	"fmt"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/util/async"
)

// DraftArchive stores draft snapshots. *archive.Client implements it.
type DraftArchive interface {
	Bucket() string
	EnsureBucket(ctx context.Context) error
	PutDraft(ctx context.Context, d grant.Draft) (string, error)
	ListDrafts(ctx context.Context) ([]string, error)
	GetDraft(ctx context.Context, key string) (grant.Draft, error)
}

func archiveClient(ctx context.Context) (DraftArchive, error) {
	cfg, err := configFrom(ctx)
	if err != nil {
		return nil, err
	}
	return newArchiveClient(ctx, cfg)
}

// ArchivePut uploads a snapshot of a draft file. Reading the draft and
// preparing the bucket run in parallel.
func ArchivePut(ctx context.Context, draftPath string) error {
	store, err := archiveClient(ctx)
	if err != nil {
		return err
	}

	var d grant.Draft
	err = async.RunParallel(ctx, []async.Task{
		{Name: "draft", Func: func(context.Context) (err error) {
			d, err = loadDraft(draftPath)
			return err
		}},
		{Name: "bucket", Func: store.EnsureBucket},
	})
	if err != nil {
		return err
	}

	key, err := store.PutDraft(ctx, d)
	if err != nil {
		return err
	}
	fmt.Printf("Archived %s to s3://%s/%s\n", draftPath, store.Bucket(), key)
	return nil
}

// ArchiveList prints the archived snapshot keys.
func ArchiveList(ctx context.Context) error {
	store, err := archiveClient(ctx)
	if err != nil {
		return err
	}

	keys, err := store.ListDrafts(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Printf("No drafts archived in %s.\n", store.Bucket())
		return nil
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}

// ArchiveFetch downloads a snapshot and writes it to outPath.
func ArchiveFetch(ctx context.Context, key, outPath string) error {
	store, err := archiveClient(ctx)
	if err != nil {
		return err
	}

	d, err := store.GetDraft(ctx, key)
	if err != nil {
		return err
	}
	if err := writeDraft(d, outPath); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	fmt.Printf("Wrote %s\n", outPath)
	return nil
}
