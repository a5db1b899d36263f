package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// Курьерский JWT берётся из DRIVER_TOKEN.
const baseURL = "http://localhost:8080"

var paths = []string{
	"/dispatch/orders",
	"/drivers/me",
	"/drivers/me/calls",
}

func main() {
	token := os.Getenv("DRIVER_TOKEN")
	if token == "" {
		fmt.Println("DRIVER_TOKEN is required")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(client, token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(client *http.Client, token string) {
	url := baseURL + paths[rand.Intn(len(paths))]
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
