package storage

import "fmt"

// Chrome storage.sync limits.
const (
	ChromeItemBytes  = 8192
	ChromeTotalBytes = 102400
)

// Quota bounds what an area may hold. Zero disables a limit.
type Quota struct {
	ItemBytes  int // max len(key)+len(value) of one item
	TotalBytes int // max size of all items after a write
}

// ChromeQuota returns the limits of the browser's storage.sync area.
func ChromeQuota() Quota {
	return Quota{ItemBytes: ChromeItemBytes, TotalBytes: ChromeTotalBytes}
}

// quotaArea rejects writes that would exceed its quota.
type quotaArea struct {
	Area
	quota Quota
}

// WithQuota wraps area so that Set fails with ErrQuotaExceeded instead of
// writing past the quota. Total limits require an area that reports its size;
// for other areas only the item limit is enforced.
func WithQuota(area Area, quota Quota) Area {
	if quota.ItemBytes <= 0 && quota.TotalBytes <= 0 {
		return area
	}
	return &quotaArea{Area: area, quota: quota}
}

func (q *quotaArea) Set(items map[string][]byte) error {
	incoming := 0
	for k, v := range items {
		size := len(k) + len(v)
		if q.quota.ItemBytes > 0 && size > q.quota.ItemBytes {
			return fmt.Errorf("%w: item %q is %d bytes (limit %d)", ErrQuotaExceeded, k, size, q.quota.ItemBytes)
		}
		incoming += size
	}

	if q.quota.TotalBytes > 0 {
		s, ok := q.Area.(sizer)
		if ok {
			total, err := q.projectedTotal(s, items, incoming)
			if err != nil {
				return err
			}
			if total > q.quota.TotalBytes {
				return fmt.Errorf("%w: total would be %d bytes (limit %d)", ErrQuotaExceeded, total, q.quota.TotalBytes)
			}
		}
	}

	return q.Area.Set(items)
}

// BytesInUse forwards to the wrapped area when it can report its size.
func (q *quotaArea) BytesInUse() (int, error) {
	if s, ok := q.Area.(sizer); ok {
		return s.BytesInUse()
	}
	return 0, fmt.Errorf("area does not report its size")
}

// projectedTotal is the stored size after items replace their current values.
func (q *quotaArea) projectedTotal(s sizer, items map[string][]byte, incoming int) (int, error) {
	inUse, err := s.BytesInUse()
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	current, err := q.Area.Get(keys...)
	if err != nil {
		return 0, err
	}

	replaced := 0
	for k, v := range current {
		replaced += len(k) + len(v)
	}
	return inUse - replaced + incoming, nil
}
