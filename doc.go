// Package xioca is a Go client for the Xioca generative AI API
// (https://xioca.live): chat completions and image generation.
//
// The package exposes two facades over the same request core. Client blocks
// for the duration of each call:
//
//	client, err := xioca.New(xioca.WithAPIKey("xio-..."))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Chat.Create(ctx, xioca.ChatRequest{
//		Model: xioca.DeepseekV3,
//		Messages: []xioca.ChatMessage{
//			{Role: xioca.RoleUser, Content: "Привет!"},
//		},
//	})
//
// AsyncClient returns a Call future per request, so several requests can be
// in flight over the shared connection pool:
//
//	async, err := xioca.NewAsync()
//	defer async.Close()
//
//	call := async.Chat.Create(ctx, req)
//	resp, err := call.Wait(ctx)
//
// The API key is taken from the WithAPIKey option, or from the XIOCA_API_KEY
// environment variable when the option is absent.
//
// All failures are typed: locally rejected requests return *ValidationError
// before any network traffic, transport failures return *NetworkError,
// non-2xx responses return *APIError, and 2xx responses the client cannot
// understand return *ParseError. The library never retries on its own.
package xioca
