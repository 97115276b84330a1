package history_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/Rorical/eventlist/internal/history"
)

func TestNew_InvalidCapacity(t *testing.T) {
	t.Parallel()
	for _, capacity := range []int{0, -1} {
		_, err := history.New(capacity)
		assert.Check(t, is.ErrorIs(err, history.ErrInvalidCapacity))
	}
}

func TestAppend_DropsOldest(t *testing.T) {
	t.Parallel()
	log, err := history.New(13)
	assert.NilError(t, err)
	for i := 1; i <= 15; i++ {
		log.Append(fmt.Sprintf("E%d", i))
	}

	expected := make([]string, 0, 13)
	for i := 3; i <= 15; i++ {
		expected = append(expected, fmt.Sprintf("E%d", i))
	}
	assert.Check(t, is.Equal(13, log.Len()))
	assert.Check(t, is.DeepEqual(expected, log.Entries()))

	reversed := make([]string, 0, 13)
	for i := 15; i >= 3; i-- {
		reversed = append(reversed, fmt.Sprintf("E%d", i))
	}
	assert.Check(t, is.DeepEqual(reversed, log.ForDisplay()))
}

func TestAppend_UnderCapacity(t *testing.T) {
	t.Parallel()
	log, err := history.New(17)
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual([]string{}, log.ForDisplay(), cmpopts.EquateEmpty()))
	assert.Check(t, is.DeepEqual([]string(nil), log.Entries(), cmpopts.EquateEmpty()))

	log.Append("first")
	log.Append("second")
	assert.Check(t, is.DeepEqual([]string{"first", "second"}, log.Entries()))
	assert.Check(t, is.DeepEqual([]string{"second", "first"}, log.ForDisplay()))
	assert.Check(t, is.Equal(17, log.Cap()))
}

func TestEntries_ReturnsCopy(t *testing.T) {
	t.Parallel()
	log, err := history.New(2)
	assert.NilError(t, err)
	log.Append("a")
	entries := log.Entries()
	entries[0] = "mutated"
	assert.Check(t, is.DeepEqual([]string{"a"}, log.Entries()))
}

func TestAppend_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		var (
			capacity = rapid.IntRange(1, 64).Draw(t, "capacity")
			appends  = rapid.SliceOf(rapid.String()).Draw(t, "appends")
		)
		log, err := history.New(capacity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, entry := range appends {
			log.Append(entry)
			if log.Len() > capacity {
				t.Fatalf("length %d exceeds capacity %d after append %d", log.Len(), capacity, i)
			}
		}

		start := max(0, len(appends)-capacity)
		want := appends[start:]
		got := log.Entries()
		if !slices.Equal(want, got) {
			t.Fatalf("retained %v, expected %v", got, want)
		}

		display := log.ForDisplay()
		for i := range display {
			if display[i] != got[len(got)-1-i] {
				t.Fatalf("display order %v is not the reverse of %v", display, got)
			}
		}
	})
}
