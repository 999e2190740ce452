package driver

import (
	"crypto/sha256"
	"testing"

	"squill/internal/diag"
	"squill/internal/source"
)

func testPayload() *DiskPayload {
	return &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Diagnostics: []cachedDiagnostic{{
			Severity: uint8(diag.SevWarning),
			Code:     uint16(diag.RuleSelectTargets),
			Start:    7,
			End:      11,
			Message:  "select targets should each start on their own line",
			Fixes: []cachedFix{{
				ID:    "SQL3001-q.sql-7",
				Title: diag.RuleSelectTargets.Title(),
				Edits: []cachedEdit{{Start: 7, End: 7, NewText: "\n"}},
			}},
		}},
	}
}

func TestCachePutGet(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := cacheKey(sha256.Sum256([]byte("select a, b from t\n")), nil)

	var miss DiskPayload
	if ok, err := cache.Get(key, &miss); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	if err := cache.Put(key, testPayload()); err != nil {
		t.Fatal(err)
	}

	var got DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("get after put: ok=%v err=%v", ok, err)
	}
	if len(got.Diagnostics) != 1 {
		t.Fatalf("diagnostics: %+v", got.Diagnostics)
	}
	d := got.Diagnostics[0]
	if d.Start != 7 || d.End != 11 || len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != "\n" {
		t.Errorf("payload round trip: %+v", d)
	}
}

func TestCacheKeySensitivity(t *testing.T) {
	hashA := sha256.Sum256([]byte("select a, b from t\n"))
	hashB := sha256.Sum256([]byte("select a from t\n"))

	if cacheKey(hashA, nil) == cacheKey(hashB, nil) {
		t.Error("different content must yield different keys")
	}
	if cacheKey(hashA, nil) == cacheKey(hashA, []string{"select-targets"}) {
		t.Error("disabled rules must change the key")
	}
	if cacheKey(hashA, nil) != cacheKey(hashA, nil) {
		t.Error("key must be deterministic")
	}
}

func TestCacheSchemaMismatchIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := cacheKey(sha256.Sum256([]byte("x")), nil)

	stale := testPayload()
	stale.Schema = diskCacheSchemaVersion + 1
	if err := cache.Put(key, stale); err != nil {
		t.Fatal(err)
	}

	var got DiskPayload
	if ok, err := cache.Get(key, &got); err != nil || ok {
		t.Errorf("stale schema must be a miss: ok=%v err=%v", ok, err)
	}
}

func TestCacheFillRehydratesFileID(t *testing.T) {
	bag := diag.NewBag(10)
	testPayload().fill(bag, source.FileID(42))
	if bag.Len() != 1 {
		t.Fatalf("fill: %d items", bag.Len())
	}
	d := bag.Items()[0]
	if d.Primary.File != source.FileID(42) {
		t.Errorf("primary span file: %d", d.Primary.File)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Edits[0].Span.File != source.FileID(42) {
		t.Errorf("fix edit file: %+v", d.Fixes)
	}
	if d.Code != diag.RuleSelectTargets || d.Severity != diag.SevWarning {
		t.Errorf("rehydrated diagnostic: %+v", d)
	}
}

func TestCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := cacheKey(sha256.Sum256([]byte("x")), nil)
	if err := cache.Put(key, testPayload()); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	var got DiskPayload
	if ok, _ := cache.Get(key, &got); ok {
		t.Error("cache should be empty after DropAll")
	}
}
