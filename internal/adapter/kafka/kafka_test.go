package kafka

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittenvotes/election-data-etl/internal/domain"
)

func TestSerializeResult(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { domain.SetClock(nil) })

	res := domain.NewCountyResult("Wayne", "President", "2020", "Joseph R. Biden", "Donald J. Trump", map[string]int{
		domain.PartyDem: 220000,
		domain.PartyRep: 90000,
	})

	msg, err := serializeResult("2020", domain.ContestPresident, res)
	require.NoError(t, err)

	assert.Equal(t, []byte("2020|president|Wayne"), msg.Key)
	assert.Contains(t, string(msg.Value), `"county":"Wayne"`)
	assert.Contains(t, string(msg.Value), `"winner":"DEM"`)

	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "contest_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("president"), msg.Headers[0].Value)
	assert.Equal(t, "year", msg.Headers[1].Key)
	assert.Equal(t, []byte("2020"), msg.Headers[1].Value)
	assert.Equal(t, "aggregated_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)
}
