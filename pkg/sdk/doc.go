// Package finsight provides a Go client for the finsight company analysis API.
//
//	client, _ := finsight.New("http://localhost:5000", finsight.WithAPIKey(key))
//	companies, _ := client.Companies().List(ctx)
//	detail, err := client.Companies().Get(ctx, "TCS")
//	if errors.Is(err, finsight.ErrRecordNotFound) {
//	    // no analysis row for TCS
//	}
//
// Detail values keep every member of the upstream company profile. Typed
// accessors cover the fields the service always sets.
package finsight
