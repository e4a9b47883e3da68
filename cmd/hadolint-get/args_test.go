package main

import (
	"reflect"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantOwn       []string
		wantForwarded []string
	}{
		{
			name:          "no separator",
			args:          []string{"-V", "v2.12.0"},
			wantOwn:       []string{"-V", "v2.12.0"},
			wantForwarded: nil,
		},
		{
			name:          "separator",
			args:          []string{"-V", "v2.12.0", "--", "--ignore", "DL3008", "Dockerfile"},
			wantOwn:       []string{"-V", "v2.12.0"},
			wantForwarded: []string{"--ignore", "DL3008", "Dockerfile"},
		},
		{
			name:          "leading separator",
			args:          []string{"--", "Dockerfile"},
			wantOwn:       []string{},
			wantForwarded: []string{"Dockerfile"},
		},
		{
			name:          "only first separator splits",
			args:          []string{"--clean", "--", "-", "--", "x"},
			wantOwn:       []string{"--clean"},
			wantForwarded: []string{"-", "--", "x"},
		},
		{
			name:          "trailing separator",
			args:          []string{"--offline", "--"},
			wantOwn:       []string{"--offline"},
			wantForwarded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			own, forwarded := splitArgs(tt.args)
			if !reflect.DeepEqual(own, tt.wantOwn) {
				t.Fatalf("own: expected %#v, got %#v", tt.wantOwn, own)
			}
			if !reflect.DeepEqual(forwarded, tt.wantForwarded) {
				t.Fatalf("forwarded: expected %#v, got %#v", tt.wantForwarded, forwarded)
			}
		})
	}
}
