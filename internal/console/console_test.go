package console

import "testing"

func TestParseUplink(t *testing.T) {
	t.Run("decodes an uplink line", func(t *testing.T) {
		got, ok, err := ParseUplink("send: payload 109A08560173")
		if err != nil {
			t.Fatalf("ParseUplink: %v", err)
		}
		if !ok {
			t.Fatal("ok = false; want true")
		}
		if got.SoilPercent != 42.5 || got.ObjectTempC != 21.34 || got.BatteryVolts != 3.71 {
			t.Errorf("sample = %+v; want soil=42.5 temp=21.34 batt=3.71", got)
		}
	})

	t.Run("tolerates trailing fields", func(t *testing.T) {
		_, ok, err := ParseUplink("send: payload 109A08560173 soil=42.50% temp=21.34C batt=3.71V")
		if err != nil {
			t.Fatalf("ParseUplink: %v", err)
		}
		if !ok {
			t.Fatal("ok = false; want true")
		}
	})

	t.Run("ignores unrelated lines", func(t *testing.T) {
		for _, line := range []string{
			"status: uptime 300s joined true",
			"join: attempt 2",
			"",
		} {
			_, ok, err := ParseUplink(line)
			if ok {
				t.Errorf("ParseUplink(%q) ok = true; want false", line)
			}
			if err != nil {
				t.Errorf("ParseUplink(%q) err = %v; want nil", line, err)
			}
		}
	})

	t.Run("rejects bad hex", func(t *testing.T) {
		_, ok, err := ParseUplink("send: payload ZZZZ")
		if !ok {
			t.Fatal("ok = false; want true")
		}
		if err == nil {
			t.Error("err = nil; want error")
		}
	})

	t.Run("rejects wrong payload length", func(t *testing.T) {
		_, ok, err := ParseUplink("send: payload 0102")
		if !ok {
			t.Fatal("ok = false; want true")
		}
		if err == nil {
			t.Error("err = nil; want error")
		}
	})

	t.Run("rejects missing hex", func(t *testing.T) {
		_, ok, err := ParseUplink("send: payload ")
		if !ok {
			t.Fatal("ok = false; want true")
		}
		if err == nil {
			t.Error("err = nil; want error")
		}
	})
}
