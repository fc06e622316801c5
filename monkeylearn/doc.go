// Package monkeylearn provides resource wrappers for the MonkeyLearn v3 API.
//
// Every wrapper builds its URL with api.Endpoint, sends the request through
// api.Client.Do and threads the raw response into an api.Response, so all
// operations share the same throttling retry and error classification.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	ml, err := monkeylearn.New("your-api-token", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := ml.Classifiers.Classify(ctx, "cl_Jx8qzYJh", monkeylearn.Texts(
//		"Great hotel with crappy food",
//		"The room was spotless",
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range res.Results {
//		fmt.Println(r.Text, r.Classifications)
//	}
//
// # Batching
//
// Classify, Extract and Predict split their input into chunks of
// DefaultBatchSize items (configurable with WithBatchSize, between
// MinBatchSize and MaxBatchSize). Chunks are sent one after the other. When a
// chunk fails, the error is returned together with the results of the chunks
// that already succeeded; the failed raw response is kept in the attached
// api.Response.
//
// # Validation
//
// Malformed input is rejected with an *api.ValidationError before any request
// is made.
package monkeylearn
