// Package crypto generates the certificates used for transport
// security. Given the same seed it deterministically derives the same
// CA, so two endpoints sharing a key can verify each other without
// exchanging certificates beforehand.
package crypto

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
)

// GenerateCertificates derives a CA from the seed and issues a fresh
// leaf certificate signed by it. An empty seed yields a random,
// one-off CA.
func GenerateCertificates(seed string) (*x509.CertPool, tls.Certificate, error) {
	var pool *x509.CertPool
	var cert tls.Certificate

	if seed == "" {
		random, err := GenerateRandomString(32)
		if err != nil {
			return pool, cert, fmt.Errorf("GenerateRandomString(32): %s", err)
		}
		seed = random
	}

	ca, err := deriveCA(seed)
	if err != nil {
		return pool, cert, fmt.Errorf("deriveCA: %s", err)
	}

	pool = x509.NewCertPool()
	pool.AddCert(ca.cert)

	cert, err = ca.issueLeaf()
	if err != nil {
		return pool, cert, fmt.Errorf("issuing leaf certificate: %s", err)
	}

	return pool, cert, nil
}
