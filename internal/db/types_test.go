package db

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`"1998-07-21"`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if d.Year() != 1998 || d.Month() != time.July || d.Day() != 21 {
		t.Errorf("parsed date = %v", d.Time)
	}

	out, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(out) != `"1998-07-21"` {
		t.Errorf("MarshalJSON() = %s", out)
	}
}

func TestDate_NullAndEmpty(t *testing.T) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`null`)); err != nil {
		t.Errorf("UnmarshalJSON(null) error = %v", err)
	}
	if err := d.UnmarshalJSON([]byte(`""`)); err != nil {
		t.Errorf("UnmarshalJSON(\"\") error = %v", err)
	}
	out, _ := d.MarshalJSON()
	if string(out) != "null" {
		t.Errorf("zero date marshals to %s, want null", out)
	}
}

func TestStringArray_ScanAndValue(t *testing.T) {
	var a StringArray
	if err := a.Scan([]byte(`["Go","SQL"]`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(a) != 2 || a[0] != "Go" {
		t.Errorf("Scan() = %v", a)
	}

	if err := a.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(a) != 0 {
		t.Errorf("Scan(nil) = %v, want empty", a)
	}

	var nilArr StringArray
	v, err := nilArr.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil Value() = %s, want []", v)
	}

	b, _ := json.Marshal(StringArray{"Fintech"})
	if string(b) != `["Fintech"]` {
		t.Errorf("Marshal = %s", b)
	}
}

func TestExperienceList_ScanAndValue(t *testing.T) {
	var l ExperienceList
	if err := l.Scan([]byte(`[{"company":"Acme Analytics","role_title":"Data Engineer"}]`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(l) != 1 || l[0].Company != "Acme Analytics" {
		t.Errorf("Scan() = %+v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(l) != 0 {
		t.Errorf("Scan(nil) = %+v, want empty", l)
	}

	var nilList ExperienceList
	v, err := nilList.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil Value() = %s, want []", v)
	}
}

func TestEducationList_ScanAndValue(t *testing.T) {
	var l EducationList
	if err := l.Scan([]byte(`[{"school":"IIT Madras","degree":"B.Tech"}]`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(l) != 1 || l[0].School != "IIT Madras" {
		t.Errorf("Scan() = %+v", l)
	}

	var nilList EducationList
	v, err := nilList.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil Value() = %s, want []", v)
	}
}
