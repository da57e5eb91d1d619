package history

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-fx-widget/domain"
	"testing"
)

func record(i int) domain.Record {
	return domain.Record{
		ID:             fmt.Sprintf("r%d", i),
		SourceAmount:   domain.Amount(i),
		SourceCurrency: "JPY",
		TargetCurrency: "EUR",
	}
}

func TestLog_RecordPrepends(t *testing.T) {
	var log Log
	log = log.Record(record(1))
	log = log.Record(record(2))

	items := log.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "r2", items[0].ID)
	assert.Equal(t, "r1", items[1].ID)
}

func TestLog_RecordCapsAtMaxEntries(t *testing.T) {
	var log Log
	for i := 1; i <= 11; i++ {
		log = log.Record(record(i))
	}

	items := log.Items()
	require.Len(t, items, MaxEntries)
	assert.Equal(t, "r11", items[0].ID)
	assert.Equal(t, "r2", items[MaxEntries-1].ID)
	for _, r := range items {
		assert.NotEqual(t, "r1", r.ID)
	}
}

func TestLog_RecordLeavesReceiverUnchanged(t *testing.T) {
	var log Log
	for i := 1; i <= MaxEntries; i++ {
		log = log.Record(record(i))
	}

	before := log.Items()
	next := log.Record(record(99))

	assert.Equal(t, before, log.Items())
	assert.Equal(t, "r99", next.Items()[0].ID)
	assert.Equal(t, MaxEntries, next.Len())
}

func TestLog_ItemsIsCopy(t *testing.T) {
	log := Log{}.Record(record(1))
	items := log.Items()
	items[0].ID = "changed"
	assert.Equal(t, "r1", log.Items()[0].ID)
}

func TestLog_Clear(t *testing.T) {
	assert.Empty(t, Log{}.Clear().Items())

	var log Log
	for i := 1; i <= 5; i++ {
		log = log.Record(record(i))
	}
	cleared := log.Clear()
	assert.Empty(t, cleared.Items())
	assert.Equal(t, 0, cleared.Len())
	assert.Equal(t, 5, log.Len())
}
