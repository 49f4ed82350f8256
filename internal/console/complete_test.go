package console

import (
	"reflect"
	"testing"
)

func TestComputeCompletions(t *testing.T) {
	names := []string{"air", "stone", "grass", "dirt", "wool"}

	tests := []struct {
		text string
		want []string
	}{
		{"s", []string{"set", "save"}},
		{"/re", []string{"/replace"}},
		{"fill ", []string{"xy", "xz", "yz"}},
		{"fill x", []string{"xy", "xz"}},
		{"fill xz 1 2 3 s", []string{"stone"}},
		{"fill xz 1 2 3 stone ", names},
		{"fill xz 1 2 3 stone grass 9 ", nil},
		{"set 1 2 3 d", []string{"dirt"}},
		{"use 1 2 3 ", []string{"bottom", "top", "north", "south", "west", "east"}},
		{"use 1 2 3 t", []string{"top"}},
		{"use 1 2 3 top g", []string{"grass"}},
		{"replace 1 2 3 a", []string{"air"}},
		{"brush W", []string{"wool"}},
		{"help ", nil},
		{"nosuch ", nil},
	}

	for _, tt := range tests {
		got := computeCompletions(tt.text, names)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("computeCompletions(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParseFace(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"top", 1, false},
		{"EAST", 5, false},
		{"2", 2, false},
		{"9", 9, false},
		{"up", 0, true},
	}
	for _, tt := range tests {
		got, err := parseFace(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFace(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && int(got) != tt.want {
			t.Errorf("parseFace(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
