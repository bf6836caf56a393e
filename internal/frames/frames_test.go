package frames

import "testing"

func TestPrefix(t *testing.T) {
	if got := Prefix(""); got != "" {
		t.Fatalf("unnamed robot should have no prefix, got %q", got)
	}
	if got := Prefix("spot1"); got != "spot1/" {
		t.Fatalf("expected spot1/, got %q", got)
	}
}

func TestResolveUnnamedRobot(t *testing.T) {
	res := Resolve("", "odom")
	if res.OdomFrame != "odom" || res.VisionFrame != "vision" || res.BodyFrame != "body" {
		t.Fatalf("unexpected frames: %+v", res)
	}
	if res.PreferVision {
		t.Fatalf("odom preference should not select vision")
	}
}

func TestResolveNamedRobot(t *testing.T) {
	res := Resolve("spot1/", "spot1/vision")
	if res.OdomFrame != "spot1/odom" || res.VisionFrame != "spot1/vision" || res.BodyFrame != "spot1/body" {
		t.Fatalf("unexpected frames: %+v", res)
	}
	if !res.PreferVision {
		t.Fatalf("expected vision preference")
	}
}

func TestResolveFallsBackToOdom(t *testing.T) {
	cases := []struct {
		prefix    string
		preferred string
	}{
		{"", ""},
		{"", "map"},
		{"", "spot1/vision"},
		{"spot1/", "vision"},
		{"spot1/", "spot2/vision"},
		{"spot1/", "garbage"},
	}
	for _, c := range cases {
		if res := Resolve(c.prefix, c.preferred); res.PreferVision {
			t.Fatalf("prefix %q preferred %q should fall back to odom", c.prefix, c.preferred)
		}
	}
}
