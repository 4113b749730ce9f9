package progress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_Silent(t *testing.T) {
	c := NewCounter(Config{
		Description: "Testing",
		Total:       10,
		Enabled:     false, // Silent mode
	})

	assert.Nil(t, c.bar)
	c.Add(5)
	c.Finish()
}

func TestCounter_Enabled(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCounter(Config{
		Description: "Scanning",
		Total:       100,
		Enabled:     true,
		Writer:      buf,
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	c.Finish()

	assert.NotNil(t, c.bar)
	assert.Equal(t, int64(100), c.bar.State().CurrentNum)
}

func TestCounter_Indeterminate(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCounter(Config{
		Description: "Scanning",
		Enabled:     true,
		Writer:      buf,
	})

	c.Add(3)
	c.Add(0)
	c.Add(-1)
	c.Finish()

	assert.NotNil(t, c.bar)
}
