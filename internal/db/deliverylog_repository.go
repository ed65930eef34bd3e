package db

import (
	"context"
	"fmt"
	"sort"

	rtdb "firebase.google.com/go/v4/db"

	"github.com/example/cmail/internal/models"
)

const deliveryLogCollection = "deliveryLog"

// rtdbDeliveryLogRepository implements DeliveryLogRepository on the Realtime
// Database. The log is append-only: nothing here mutates or removes entries.
type rtdbDeliveryLogRepository struct {
	client *rtdb.Client
}

// NewDeliveryLogRepository creates a DeliveryLogRepository backed by the Realtime Database.
func NewDeliveryLogRepository(client *rtdb.Client) DeliveryLogRepository {
	return &rtdbDeliveryLogRepository{client: client}
}

func (r *rtdbDeliveryLogRepository) shard(owner string) *rtdb.Ref {
	return r.client.NewRef(deliveryLogCollection + "/" + SanitizeOwnerKey(owner))
}

func (r *rtdbDeliveryLogRepository) Append(ctx context.Context, owner string, entry models.DeliveryLogEntry) error {
	entry.ID = ""
	entry.Timestamp = entry.Timestamp.UTC()
	if _, err := r.shard(owner).Push(ctx, entry); err != nil {
		return fmt.Errorf("%w: failed to append delivery log entry: %v", ErrStoreWrite, err)
	}
	return nil
}

func (r *rtdbDeliveryLogRepository) List(ctx context.Context, owner string) ([]models.DeliveryLogEntry, error) {
	var raw map[string]models.DeliveryLogEntry
	if err := r.shard(owner).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to read delivery log: %v", ErrStoreRead, err)
	}

	entries := make([]models.DeliveryLogEntry, 0, len(raw))
	for id, e := range raw {
		e.ID = id
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
