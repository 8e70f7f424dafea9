package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	customerFlag := flag.String("customer", "", "customer name")
	generatorFlag := flag.String("generator", "preset", "content generator (preset, openai, anthropic)")
	accentFlag := flag.String("accent", "#08574A", "accent color")
	logoFlag := flag.String("logo", "", "path to a logo image")
	tokenFlag := flag.String("token", "", "api credential for remote generators")
	outputFlag := flag.String("output", "", "output file")

	flag.Parse()

	if *customerFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	mw.WriteField("customer", *customerFlag)
	mw.WriteField("generator", *generatorFlag)
	mw.WriteField("accent", *accentFlag)

	if *tokenFlag != "" {
		mw.WriteField("token", *tokenFlag)
	}

	if *logoFlag != "" {
		data, err := os.ReadFile(*logoFlag)

		if err != nil {
			panic(err)
		}

		fw, err := mw.CreateFormFile("file", filepath.Base(*logoFlag))

		if err != nil {
			panic(err)
		}

		fw.Write(data)
	}

	mw.Close()

	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(*urlFlag, "/")+"/generate", &body)

	if err != nil {
		panic(err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)

	if err != nil {
		panic(err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		panic(err)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "%s: %s\n", resp.Status, strings.TrimSpace(string(data)))
		os.Exit(1)
	}

	output := *outputFlag

	if output == "" {
		output = attachmentName(resp.Header.Get("Content-Disposition"))
	}

	if output == "" {
		output = "deck.pptx"
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		panic(err)
	}

	fmt.Println(output)
}

func attachmentName(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)

	if err != nil {
		return ""
	}

	return params["filename"]
}
