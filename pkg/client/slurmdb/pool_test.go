package slurmdb

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewPoolKey(t *testing.T) {
	key, err := NewPoolKey("hpc1", "10.0.0.6", 3306)
	if err != nil {
		t.Fatalf("NewPoolKey: %v", err)
	}
	if key != "hpc1:10.0.0.6:3306" {
		t.Errorf("key = %q", key)
	}

	if _, err := NewPoolKey("", "10.0.0.6", 3306); err == nil {
		t.Error("empty cluster should be rejected")
	}
	// 主机名不是合法的池键地址
	if _, err := NewPoolKey("hpc1", "db.example.com", 3306); err == nil {
		t.Error("hostname should be rejected")
	}
}

func TestConfDSN(t *testing.T) {
	conf := Conf{Cluster: "hpc1", IP: "10.0.0.6", Port: 3306,
		Database: "slurm_acct_db", User: "slurm", Passwd: "secret"}
	want := "slurm:secret@tcp(10.0.0.6:3306)/slurm_acct_db"
	if got := conf.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestFetchOrCreateSingleCreation(t *testing.T) {
	var created int32
	p := &SlurmDBPool{
		create: func(context.Context, Conf) (*SlurmDB, error) {
			atomic.AddInt32(&created, 1)
			return &SlurmDB{prefix: "hpc1"}, nil
		},
	}
	conf := Conf{Cluster: "hpc1", IP: "10.0.0.6", Port: 3306}

	var wg sync.WaitGroup
	dbs := make([]*SlurmDB, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := p.FetchOrCreate(context.Background(), conf)
			if err != nil {
				t.Errorf("FetchOrCreate: %v", err)
				return
			}
			dbs[i] = db
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&created); n != 1 {
		t.Errorf("created %d connections, want 1", n)
	}
	for i := 1; i < len(dbs); i++ {
		if dbs[i] != dbs[0] {
			t.Fatal("all callers should share the same connection")
		}
	}

	// 不同集群应建立新连接
	if _, err := p.FetchOrCreate(context.Background(), Conf{Cluster: "hpc2", IP: "10.0.0.7", Port: 3306}); err != nil {
		t.Fatalf("FetchOrCreate hpc2: %v", err)
	}
	if n := atomic.LoadInt32(&created); n != 2 {
		t.Errorf("created %d connections after second cluster, want 2", n)
	}
}

func TestFetchOrCreateBadAddress(t *testing.T) {
	p := &SlurmDBPool{}
	if _, err := p.FetchOrCreate(context.Background(), Conf{Cluster: "hpc1", IP: "not-an-ip", Port: 3306}); err == nil {
		t.Fatal("want error for bad address")
	}
}
