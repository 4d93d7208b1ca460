// Command xanthos-stress drives concurrent inserts, removes, and
// reclaim passes against a xanthos.List to exercise the hazard-pointer
// and snapshot-visibility machinery under contention.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/xanthos"
)

func main() {
	workers := flag.Int("workers", 8, "number of concurrent inserter/remover goroutines")
	readers := flag.Int("readers", 4, "number of concurrent iterator goroutines")
	duration := flag.Duration("duration", 5*time.Second, "how long to run the stress workload")
	reclaimEvery := flag.Duration("reclaim-every", 10*time.Millisecond, "interval between reclaim passes")

	flag.Parse()

	domain := xanthos.NewDomain(xanthos.DefaultDomainConfig())
	list, err := xanthos.NewList(domain, xanthos.DefaultConfig())
	if err != nil {
		log.Fatalf("xanthos-stress: new list: %v", err)
	}

	var inserted, removed, freed, iterated atomic.Int64
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			th, err := domain.Register(nil)
			if err != nil {
				log.Printf("xanthos-stress: worker %d register: %v", id, err)
				return
			}
			defer domain.Unregister(th)

			r := rand.New(rand.NewSource(int64(id) + 1))
			for {
				select {
				case <-stop:
					return
				default:
				}
				v := r.Intn(1000)
				if r.Intn(2) == 0 {
					if err := list.InsertHead(th, v); err == nil {
						inserted.Add(1)
					}
				} else {
					_, err := list.RemoveFirst(th)
					if err == nil {
						removed.Add(1)
					}
				}
			}
		}(i)
	}

	for i := 0; i < *readers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			th, err := domain.Register(nil)
			if err != nil {
				log.Printf("xanthos-stress: reader %d register: %v", id, err)
				return
			}
			defer domain.Unregister(th)

			for {
				select {
				case <-stop:
					return
				default:
				}
				it, err := list.Begin(th)
				if err != nil {
					continue
				}
				for it.Valid() {
					iterated.Add(1)
					it.Next()
				}
				it.End()
			}
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		th, err := domain.Register(nil)
		if err != nil {
			log.Printf("xanthos-stress: reclaimer register: %v", err)
			return
		}
		defer domain.Unregister(th)

		ticker := time.NewTicker(*reclaimEvery)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				n, err := list.Reclaim(th, nil)
				if err == nil {
					freed.Add(int64(n))
				}
			}
		}
	}()

	time.Sleep(*duration)
	close(stop)
	wg.Wait()

	stats := list.Stats()
	fmt.Printf("inserted=%d removed=%d freed=%d iterated=%d approxLength=%d commitSeq=%d\n",
		inserted.Load(), removed.Load(), freed.Load(), iterated.Load(), stats.ApproxLength, stats.CommitSeq)
}
