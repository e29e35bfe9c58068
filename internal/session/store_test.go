package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(30 * time.Minute)

	sess := store.Create(1)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Equal(t, StepIdle, sess.Step)
	require.NotNil(t, sess.Complaint)
	assert.Equal(t, int64(1), sess.Complaint.UserID)

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestGetMissing(t *testing.T) {
	store := NewStore(30 * time.Minute)
	_, ok := store.Get(42)
	assert.False(t, ok)
}

func TestCreateReplacesExisting(t *testing.T) {
	store := NewStore(30 * time.Minute)

	first := store.Create(1)
	first.Complaint.Name = "Old Name"
	first.Step = StepAge

	second := store.Create(1)
	assert.NotSame(t, first, second)
	assert.Empty(t, second.Complaint.Name)
	assert.Equal(t, StepIdle, second.Step)
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewStore(30 * time.Minute)

	a := store.Create(1)
	b := store.Create(2)
	a.Complaint.Name = "A"
	a.Step = StepPhone

	assert.Empty(t, b.Complaint.Name)
	assert.Equal(t, StepIdle, b.Step)
	assert.Equal(t, 2, store.Len())
}

func TestClear(t *testing.T) {
	store := NewStore(30 * time.Minute)
	store.Create(1)
	store.Clear(1)

	_, ok := store.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestExpiredSessionDropped(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	store.Create(1)

	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestTouchKeepsSessionAlive(t *testing.T) {
	store := NewStore(50 * time.Millisecond)
	sess := store.Create(1)

	time.Sleep(30 * time.Millisecond)
	sess.Touch()
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get(1)
	assert.True(t, ok)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	store := NewStore(0)
	store.Create(1)

	time.Sleep(10 * time.Millisecond)

	_, ok := store.Get(1)
	assert.True(t, ok)
}

func TestConcurrentGetAndTouch(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			sess.Lock()
			sess.Touch()
			sess.Unlock()
		}
	}()

	for i := 0; i < 200; i++ {
		_, ok := store.Get(1)
		assert.True(t, ok)
	}
	<-done
}

func TestGetOrCreate(t *testing.T) {
	store := NewStore(30 * time.Minute)

	sess := store.GetOrCreate(1)
	sess.Complaint.Name = "kept"

	again := store.GetOrCreate(1)
	assert.Equal(t, "kept", again.Complaint.Name)
}

func TestInFlow(t *testing.T) {
	sess := &Session{Step: StepIdle}
	assert.False(t, sess.InFlow())

	sess.Step = StepName
	assert.True(t, sess.InFlow())

	sess.Step = StepAdditionalDetails
	assert.True(t, sess.InFlow())

	sess.Step = StepDone
	assert.False(t, sess.InFlow())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "name", StepName.String())
	assert.Equal(t, "type_confirmation", StepTypeConfirmation.String())
	assert.Equal(t, "done", StepDone.String())
}
