package config

import "testing"

func TestDetectDBType(t *testing.T) {
	cases := []struct {
		name     string
		postgres string
		mongo    string
		want     string
	}{
		{"both empty", "", "", "demo"},
		{"placeholder postgres", "your_postgres_url_here", "", "demo"},
		{"placeholder mongo", "", "your_mongo_url_here", "demo"},
		{"valid postgres", "postgres://user:pw@db.example.com:5432/incargo", "", "postgres"},
		{"postgres wins over mongo", "postgres://user:pw@db.example.com:5432/incargo", "mongodb://db.example.com:27017", "postgres"},
		{"valid mongo only", "", "mongodb://db.example.com:27017", "mongo"},
		{"garbage url", "not a url", "", "demo"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := detectDBType(c.postgres, c.mongo); got != c.want {
				t.Fatalf("detectDBType(%q, %q) = %q, want %q", c.postgres, c.mongo, got, c.want)
			}
		})
	}
}
