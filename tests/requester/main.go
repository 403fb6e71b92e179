package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:9000/orders/"
	fixedID = "7f9c3a0e-5f0b-4a6e-9a2d-1c8e4b6d2f10"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = randomID(12)
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
