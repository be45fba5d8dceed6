package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"sort"

	"github.com/fatih/color"
	"github.com/nhdewitt/tiny-httpserver/internal/request"
)

var (
	label = color.New(color.FgCyan, color.Bold).SprintFunc()
	warn  = color.New(color.FgYellow).SprintFunc()
)

func main() {
	addr := flag.String("addr", ":42069", "address to listen on")
	flag.Parse()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("error listening: %v", err.Error())
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", *addr)
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Printf("error accepting connection: %v", err)
			continue
		}
		log.Println("Connection accepted:", c.RemoteAddr())

		req, err := request.RequestFromReader(c, request.DefaultBufferSize)
		if err != nil {
			fmt.Println(warn("error parsing request:"), err)
		} else {
			printRequest(req)
		}

		c.Close()
		fmt.Println("Connection to", c.RemoteAddr(), "closed")
	}
}

func printRequest(req *request.Request) {
	fmt.Println(label("Request line:"))
	fmt.Printf("- Method: %s\n", req.Method)
	fmt.Printf("- Target: %s\n", req.Resource.Path)
	fmt.Printf("- Version: %s\n", req.Version)
	if host := req.Headers.Get("Host"); host != "" {
		fmt.Printf("- Host:%s\n", host)
	}

	fmt.Println(label("Headers:"))
	names := make([]string, 0, len(req.Headers))
	for k := range req.Headers {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("- %s:%s\n", k, req.Headers[k])
	}

	if req.Body != "" {
		fmt.Println(label("Body:"))
		fmt.Println(req.Body)
	}
}
