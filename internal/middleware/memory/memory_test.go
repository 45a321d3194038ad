package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorage(t *testing.T) {
	now := time.Unix(1000, 0)

	s := NewStorage()
	s.now = func() time.Time { return now }

	assert.Nil(t, s.Get("key"))

	s.Set("key", []byte("content"), time.Minute)
	assert.Equal(t, []byte("content"), s.Get("key"))

	now = now.Add(30 * time.Second)
	assert.Equal(t, []byte("content"), s.Get("key"))

	now = now.Add(31 * time.Second)
	assert.Nil(t, s.Get("key"))

	// expired entry is evicted, not resurrected
	now = now.Add(-time.Minute)
	assert.Nil(t, s.Get("key"))
}

func TestStorage_Overwrite(t *testing.T) {
	s := NewStorage()

	s.Set("key", []byte("old"), time.Minute)
	s.Set("key", []byte("new"), time.Minute)

	assert.Equal(t, []byte("new"), s.Get("key"))
}
