package game

import (
	"testing"

	"github.com/hogehogepiyopiyo/yesnogame/internal/store"
)

func TestReleaseRoomsPrunesIdleLocks(t *testing.T) {
	svc := NewService(store.NewMemoryStore(0), nil, nil)

	svc.roomLock("r1")
	svc.roomLock("r2")

	svc.ReleaseRooms("r1", "never-seen")

	if _, ok := svc.rooms["r1"]; ok {
		t.Fatal("expected lock for r1 to be released")
	}
	if _, ok := svc.rooms["r2"]; !ok {
		t.Fatal("lock for untouched room r2 went missing")
	}
}

func TestReleaseRoomsKeepsHeldLock(t *testing.T) {
	svc := NewService(store.NewMemoryStore(0), nil, nil)

	lock := svc.roomLock("busy")
	lock.Lock()
	defer lock.Unlock()

	svc.ReleaseRooms("busy")

	if _, ok := svc.rooms["busy"]; !ok {
		t.Fatal("lock of an in-flight turn must survive the sweep")
	}
}
