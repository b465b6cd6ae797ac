// Package indexgen renders the Unity indexer script and the Qdrant compose
// manifest in-process, without running the HTTP server.
//
//	client, _ := indexgen.New(
//	    indexgen.WithConfig(indexgen.Config{
//	        ServiceURL:     "http://localhost:7000",
//	        CollectionName: "rpg_code",
//	        Distance:       indexgen.DistanceDot,
//	    }),
//	)
//	script, _ := client.Artifact(indexgen.ArtifactScript)
//	_ = os.WriteFile(script.FileName, []byte(script.Content), 0o644)
//
// The schema advisor needs a credential (API_KEY by default):
//
//	tips, _ := client.Analyze(ctx, indexgen.AnalyzeRequest{
//	    ProjectDescription: "tactical RPG with many ScriptableObjects",
//	})
package indexgen
