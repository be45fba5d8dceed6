package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"strings"

	"github.com/fatih/color"
)

const defaultRequest = "GET / HTTP/1.1\r\nHost: localhost\r\nUser-Agent: tcpclient\r\n\r\n"

func main() {
	addr := flag.String("addr", "localhost:3000", "server address")
	path := flag.String("path", "", "request target; sends a GET for this path instead of the default request")
	flag.Parse()

	raw := defaultRequest
	if *path != "" {
		raw = fmt.Sprintf("GET %s HTTP/1.1\r\nHost: localhost\r\nUser-Agent: tcpclient\r\n\r\n", *path)
	}

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Fatalf("error connecting to %s: %v", *addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(raw)); err != nil {
		log.Fatalf("write error: %v", err)
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	printResponse(string(resp))
}

func printResponse(resp string) {
	head, body, _ := strings.Cut(resp, "\r\n\r\n")
	statusLine, fields, _ := strings.Cut(head, "\r\n")

	statusColor := color.New(color.FgGreen, color.Bold)
	if parts := strings.Fields(statusLine); len(parts) > 1 && parts[1] != "" {
		switch parts[1][0] {
		case '4':
			statusColor = color.New(color.FgYellow, color.Bold)
		case '5':
			statusColor = color.New(color.FgRed, color.Bold)
		}
	}
	statusColor.Println(statusLine)

	for _, f := range strings.Split(fields, "\r\n") {
		if f == "" {
			continue
		}
		color.Cyan(f)
	}
	fmt.Println()
	fmt.Println(body)
}
