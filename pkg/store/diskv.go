package store

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/noesis/pkg/checklist"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/share"
)

// Persistence is the local key-value contract for the journal. Per-day
// reads return an explicit absent signal, never a malformed value; a key
// that fails to decode is reported on stderr and skipped.
type Persistence interface {
	ListEntries(ctx context.Context) []*entry.Entry
	EntriesOn(ctx context.Context, dayKey string) []*entry.Entry
	StoreEntry(e *entry.Entry) error

	ChecklistDay(dayKey string) (checklist.Day, bool, error)
	SaveChecklistDay(day checklist.Day) error
	DayCompleted(dayKey string) bool
	SetDayCompleted(dayKey string, completed bool) error

	JournalDay(dayKey string) bool
	WellnessUsed() bool
	WellnessUsage() (map[string]string, error)
	MarkWellnessUsed(id, dayKey string) error

	EarnedBadges() ([]string, error)
	SaveEarnedBadges(ids []string) error

	ShareSettings() (share.Settings, bool, error)
	SaveShareSettings(s share.Settings) error

	Wipe() error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Collections. Each key is `<b64 collection>-<date>-<name>`, split on `-`
// into a directory path with the last segment as file name.
const (
	colJournal   = "journal"
	colChecklist = "checklist"
	colCompleted = "completed"
	colBadges    = "badges"
	colSettings  = "settings"
	colWellness  = "wellness"

	fixedDatePart = "all"
)

func (p *persistence) readEntry(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	e.ID = pk.FileName
	return e, nil
}

func (p *persistence) ListEntries(ctx context.Context) []*entry.Entry {
	prefix := toCollection(colJournal) + "-"
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		e, err := p.readEntry(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	entry.SortDescending(all)
	return all
}

func (p *persistence) EntriesOn(ctx context.Context, dayKey string) []*entry.Entry {
	prefix := fmt.Sprintf("%s-%s-", toCollection(colJournal), dayKey)
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		e, err := p.readEntry(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	entry.SortDescending(all)
	return all
}

func (p *persistence) StoreEntry(e *entry.Entry) error {
	key := entryKey(e)
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) ChecklistDay(dayKey string) (checklist.Day, bool, error) {
	key := toKey(colChecklist, dayKey, "day")
	if !p.d.Has(key) {
		return checklist.Day{}, false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return checklist.Day{}, false, err
	}
	var day checklist.Day
	if err := json.Unmarshal(val, &day); err != nil {
		return checklist.Day{}, false, err
	}
	return day, true, nil
}

func (p *persistence) SaveChecklistDay(day checklist.Day) error {
	data, err := json.Marshal(day)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(colChecklist, day.DayKey, "day"), data)
}

func (p *persistence) DayCompleted(dayKey string) bool {
	key := toKey(colCompleted, dayKey, "flag")
	if !p.d.Has(key) {
		return false
	}
	val, err := p.d.Read(key)
	if err != nil {
		return false
	}
	return string(val) == "true"
}

func (p *persistence) SetDayCompleted(dayKey string, completed bool) error {
	val := "false"
	if completed {
		val = "true"
	}
	return p.d.Write(toKey(colCompleted, dayKey, "flag"), []byte(val))
}

func (p *persistence) JournalDay(dayKey string) bool {
	prefix := fmt.Sprintf("%s-%s-", toCollection(colJournal), dayKey)
	for key := range p.d.Keys(nil) {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func (p *persistence) WellnessUsed() bool {
	used, err := p.WellnessUsage()
	return err == nil && len(used) > 0
}

func (p *persistence) WellnessUsage() (map[string]string, error) {
	key := toKey(colWellness, fixedDatePart, "used")
	if !p.d.Has(key) {
		return map[string]string{}, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	used := make(map[string]string)
	if err := json.Unmarshal(val, &used); err != nil {
		return nil, err
	}
	return used, nil
}

func (p *persistence) MarkWellnessUsed(id, dayKey string) error {
	used, err := p.WellnessUsage()
	if err != nil {
		return err
	}
	if _, ok := used[id]; ok {
		return nil
	}
	used[id] = dayKey
	data, err := json.Marshal(used)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(colWellness, fixedDatePart, "used"), data)
}

func (p *persistence) EarnedBadges() ([]string, error) {
	key := toKey(colBadges, fixedDatePart, "earned")
	if !p.d.Has(key) {
		return []string{}, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(val, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (p *persistence) SaveEarnedBadges(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(colBadges, fixedDatePart, "earned"), data)
}

func (p *persistence) ShareSettings() (share.Settings, bool, error) {
	key := toKey(colSettings, fixedDatePart, "share")
	if !p.d.Has(key) {
		return share.Default(), false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return share.Default(), false, err
	}
	var s share.Settings
	if err := json.Unmarshal(val, &s); err != nil {
		return share.Default(), false, err
	}
	return s, true, nil
}

func (p *persistence) SaveShareSettings(s share.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(colSettings, fixedDatePart, "share"), data)
}

func (p *persistence) Wipe() error {
	return p.d.EraseAll()
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// entryKey makes `journal-date-id`, minting an id from the content hash
// the first time an entry is stored.
func entryKey(e *entry.Entry) string {
	if e.ID == "" {
		b, _ := json.Marshal(e)
		id := md5.Sum(b)
		e.ID = fmt.Sprintf("%x", id[:8])
	}
	return toKey(colJournal, entry.DayKey(e.Created.Time), e.ID)
}

func toKey(collection, datePart, name string) string {
	return fmt.Sprintf("%s-%s-%s", toCollection(collection), datePart, name)
}

func toCollection(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
