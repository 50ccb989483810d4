package physics

import "testing"

func TestMoveXStopsAtWall(t *testing.T) {
	c := NewBody(0, 0, 16, 16, Collider)
	wall := NewBody(40, 0, 16, 16, Solid)
	newTestSpace(c, wall)
	hits, wallHits := record(c), record(wall)

	c.MoveX(50, false)

	if got := c.Box().Right; got != 40 {
		t.Errorf("right edge = %v, want 40", got)
	}
	if len(*hits) != 1 || len(*wallHits) != 1 {
		t.Fatalf("notifications = %d/%d, want one pair", len(*hits), len(*wallHits))
	}
	if h := (*hits)[0]; h.side != SideRight || h.other != wall || h.loss != 26 {
		t.Errorf("collider notified %+v", h)
	}
	if h := (*wallHits)[0]; h.side != SideLeft || h.other != c || h.loss != 0 {
		t.Errorf("wall notified %+v", h)
	}
}

func TestMoveXLeftStopsAtWall(t *testing.T) {
	c := NewBody(60, 0, 16, 16, Collider)
	wall := NewBody(40, 0, 16, 16, Solid)
	newTestSpace(wall, c)
	hits := record(c)

	c.MoveX(-30, false)

	if c.X() != 56 {
		t.Errorf("x = %v, want 56", c.X())
	}
	if len(*hits) != 1 || (*hits)[0].side != SideLeft || (*hits)[0].loss != 26 {
		t.Errorf("hits = %+v", *hits)
	}
}

func TestMoveYLandsOnFloor(t *testing.T) {
	c := NewBody(0, 0, 16, 16, Collider)
	floor := NewBody(0, 32, 64, 16, Solid)
	newTestSpace(c, floor)
	hits := record(c)

	c.MoveY(100, false)

	if c.Y() != 16 {
		t.Errorf("y = %v, want 16", c.Y())
	}
	if len(*hits) != 1 || (*hits)[0].side != SideBottom || (*hits)[0].loss != 84 {
		t.Errorf("hits = %+v", *hits)
	}
	if !c.Touching(SideBottom) || c.Touching(SideTop) {
		t.Error("collider should rest on the floor only")
	}
	if got := c.BottomTouchingWalls(); len(got) != 1 || got[0] != floor {
		t.Errorf("BottomTouchingWalls() = %v", got)
	}
}

func TestZeroMoveIsNoop(t *testing.T) {
	c := NewBody(24, 0, 16, 16, Collider)
	wall := NewBody(40, 0, 16, 16, Solid)
	newTestSpace(c, wall)
	hits := record(c)

	c.MoveX(0, false)
	c.MoveY(0, true)

	if c.X() != 24 || c.Y() != 0 || len(*hits) != 0 {
		t.Errorf("zero move changed state: (%v, %v) hits %d", c.X(), c.Y(), len(*hits))
	}
}

func TestHugeMoveClampsAtWall(t *testing.T) {
	c := NewBody(0, 0, 16, 16, Collider)
	wall := NewBody(40, 0, 16, 16, Solid)
	newTestSpace(c, wall)

	c.MoveX(1e6, false)

	if c.Box().Right != 40 {
		t.Errorf("right edge = %v, want 40", c.Box().Right)
	}
}

func TestNearestWallWins(t *testing.T) {
	c := NewBody(0, 0, 16, 16, Collider)
	far := NewBody(100, 0, 16, 16, Solid)
	near := NewBody(40, 0, 16, 8, Solid)
	alsoNear := NewBody(40, 8, 16, 8, Solid)
	newTestSpace(c, far, near, alsoNear)
	hits := record(c)

	c.MoveX(200, false)

	if c.Box().Right != 40 {
		t.Errorf("right edge = %v, want 40", c.Box().Right)
	}
	if len(*hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(*hits))
	}
	if (*hits)[0].other != near {
		t.Errorf("stopped by %+v, want the first wall at the contact edge", (*hits)[0].other.Box())
	}
}

func TestOneSidedPlatform(t *testing.T) {
	platform := NewBody(16, 0, 16, 16, BlocksTop)

	t.Run("passes horizontally", func(t *testing.T) {
		c := NewBody(0, 0, 8, 8, Collider)
		newTestSpace(c, platform)
		c.MoveX(40, false)
		if c.X() != 40 {
			t.Errorf("x = %v, want 40", c.X())
		}
	})
	t.Run("jumps through from below", func(t *testing.T) {
		c := NewBody(16, 20, 8, 8, Collider)
		newTestSpace(c, platform)
		c.MoveY(-30, false)
		if c.Y() != -10 {
			t.Errorf("y = %v, want -10", c.Y())
		}
	})
	t.Run("lands from above", func(t *testing.T) {
		c := NewBody(16, -20, 8, 8, Collider)
		newTestSpace(c, platform)
		c.MoveY(30, false)
		if c.Y() != -8 {
			t.Errorf("y = %v, want -8", c.Y())
		}
	})
}

func TestOverlappingWallDoesNotBlock(t *testing.T) {
	c := NewBody(44, 0, 8, 8, Collider)
	wall := NewBody(40, 0, 16, 16, Solid)
	newTestSpace(c, wall)

	c.MoveX(20, false)

	if c.X() != 64 {
		t.Errorf("x = %v, want 64", c.X())
	}
}

func TestMoveWithoutSpace(t *testing.T) {
	c := NewBody(0, 0, 8, 8, Collider)
	c.MoveX(5, false)
	c.MoveY(-3, false)
	if c.X() != 5 || c.Y() != -3 {
		t.Errorf("position = (%v, %v), want (5, -3)", c.X(), c.Y())
	}
}

func TestReentrantMovePanics(t *testing.T) {
	c := NewBody(0, 0, 16, 16, Collider)
	wall := NewBody(40, 0, 16, 16, Solid)
	newTestSpace(c, wall)
	c.OnCollision = func(Side, *Body, float64) {
		c.MoveX(-1, false)
	}

	assertPanics(t, ErrReentrantMove, func() { c.MoveX(50, false) })

	// The guard resets once the panic unwinds.
	c.OnCollision = nil
	c.MoveX(-10, false)
	if c.Box().Right != 30 {
		t.Errorf("right edge = %v, want 30", c.Box().Right)
	}
}

func TestStaticBodyPanics(t *testing.T) {
	wall := NewBody(0, 0, 16, 16, Solid)
	newTestSpace(wall)
	assertPanics(t, ErrStaticBody, func() { wall.MoveX(1, false) })
	assertPanics(t, ErrStaticBody, func() { wall.MoveY(-1, true) })
}
