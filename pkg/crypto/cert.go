package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"time"
)

// ca is a derived certificate authority ready to issue leaf
// certificates.
type ca struct {
	key  *ecdsa.PrivateKey
	cert *x509.Certificate
}

// deriveCA deterministically derives an ECDSA P-256 CA from the seed.
// Subject fields are also seed-derived so the CA looks unremarkable
// yet reproduces exactly for the same seed.
func deriveCA(seed string) (*ca, error) {
	rng := newSeedReader(seed)

	key, err := ecdsa.GenerateKey(elliptic.P256(), rng)
	if err != nil {
		return nil, fmt.Errorf("generating CA key: %s", err)
	}

	cn, err := randomString(8, rng)
	if err != nil {
		return nil, fmt.Errorf("generating common name: %s", err)
	}

	serial, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		return nil, fmt.Errorf("generating serial: %s", err)
	}

	tmpl := x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName: cn,
		},
		NotBefore:             time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:              time.Date(2063, 4, 5, 11, 0, 0, 0, time.UTC),
		BasicConstraintsValid: true,
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("creating CA certificate: %s", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("parsing CA certificate: %s", err)
	}

	return &ca{key: key, cert: cert}, nil
}

// issueLeaf creates a fresh certificate signed by the CA. The leaf
// key is random; only the CA must be reproducible.
func (c *ca) issueLeaf() (tls.Certificate, error) {
	var out tls.Certificate

	key, err := ecdsa.GenerateKey(c.cert.PublicKey.(*ecdsa.PublicKey).Curve, rand.Reader)
	if err != nil {
		return out, fmt.Errorf("generating leaf key: %s", err)
	}

	cn, err := GenerateRandomString(8)
	if err != nil {
		return out, fmt.Errorf("generating common name: %s", err)
	}

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2063, 4, 5, 11, 0, 0, 0, time.UTC),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, c.cert, &key.PublicKey, c.key)
	if err != nil {
		return out, fmt.Errorf("creating leaf certificate: %s", err)
	}

	out = tls.Certificate{
		Certificate: [][]byte{der},
		PrivateKey:  key,
	}

	return out, nil
}
