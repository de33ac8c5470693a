package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type leaverDispatcher interface {
	DeprovisionUser(ctx context.Context, username string) ([]byte, error)
}

// awsDispatcher sends a single SigV4-signed DELETE to the ICEMan API, which
// removes the user from all of their AWS groups. These credentials are a
// separate chain from the Workspace ones.
type awsDispatcher struct {
	apiURL string
	region string
	creds  aws.CredentialsProvider
	client *http.Client
}

const awsDispatchTimeout = 10 * time.Second

func newAWSDispatcher(env *Env) *awsDispatcher {
	return &awsDispatcher{
		apiURL: env.AWSAPIURL,
		region: env.AWSRegion,
		creds:  credentials.NewStaticCredentialsProvider(env.AWSAccessKeyID, env.AWSSecretAccessKey, ""),
		client: &http.Client{Timeout: awsDispatchTimeout},
	}
}

// DeprovisionUser returns the API's response body on HTTP 200; any other
// status or transport failure is an error. The caller reports failures, it
// does not retry them.
func (d *awsDispatcher) DeprovisionUser(ctx context.Context, username string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, d.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	creds, err := d.creds.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not resolve AWS credentials: %v", err)
	}

	payloadHash := sha256.Sum256(payload)
	signer := v4.NewSigner()
	if err := signer.SignHTTP(ctx, creds, req, hex.EncodeToString(payloadHash[:]), "execute-api", d.region, time.Now()); err != nil {
		return nil, fmt.Errorf("could not sign request: %v", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	return body, nil
}
