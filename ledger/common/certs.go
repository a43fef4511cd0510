// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"fmt"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	CertificateTypeStakeRegistration   = 0
	CertificateTypeStakeDeregistration = 1
	CertificateTypeStakeDelegation     = 2
	CertificateTypeRegistration        = 7
	CertificateTypeDeregistration      = 8
)

type PoolKeyHash = Blake2b224

type Certificate interface {
	isCertificate()
	Cbor() []byte
	Type() uint
	Utxorpc() *utxorpc.Certificate
}

// CredentialCertificate is implemented by certificates that act on a stake
// credential, which is what a script witness for the certificate validates
type CredentialCertificate interface {
	Certificate
	Credential() Credential
}

// CertificateName returns a human readable name for a certificate type
func CertificateName(certType uint) string {
	switch certType {
	case CertificateTypeStakeRegistration:
		return "StakeRegistration"
	case CertificateTypeStakeDeregistration:
		return "StakeDeregistration"
	case CertificateTypeStakeDelegation:
		return "StakeDelegation"
	case CertificateTypeRegistration:
		return "Registration"
	case CertificateTypeDeregistration:
		return "Deregistration"
	default:
		return fmt.Sprintf("Certificate(%d)", certType)
	}
}

type CertificateWrapper struct {
	Type        uint
	Certificate Certificate
}

func (c *CertificateWrapper) UnmarshalCBOR(data []byte) error {
	certType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	var tmpCert Certificate
	switch certType {
	case CertificateTypeStakeRegistration:
		tmpCert = &StakeRegistrationCertificate{}
	case CertificateTypeStakeDeregistration:
		tmpCert = &StakeDeregistrationCertificate{}
	case CertificateTypeStakeDelegation:
		tmpCert = &StakeDelegationCertificate{}
	case CertificateTypeRegistration:
		tmpCert = &RegistrationCertificate{}
	case CertificateTypeDeregistration:
		tmpCert = &DeregistrationCertificate{}
	default:
		return fmt.Errorf("unsupported certificate type: %d", certType)
	}
	if _, err := cbor.Decode(data, tmpCert); err != nil {
		return err
	}
	// certType is known within uint range
	c.Type = uint(certType) // #nosec G115
	c.Certificate = tmpCert
	return nil
}

func (c *CertificateWrapper) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(c.Certificate)
}

type StakeRegistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
}

func NewStakeRegistrationCertificate(
	cred Credential,
) *StakeRegistrationCertificate {
	return &StakeRegistrationCertificate{
		CertType:        CertificateTypeStakeRegistration,
		StakeCredential: cred,
	}
}

func (StakeRegistrationCertificate) isCertificate() {}

func (c *StakeRegistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	return c.UnmarshalCbor(cborData, c)
}

func (c *StakeRegistrationCertificate) Type() uint {
	return c.CertType
}

func (c *StakeRegistrationCertificate) Credential() Credential {
	return c.StakeCredential
}

func (c *StakeRegistrationCertificate) Utxorpc() *utxorpc.Certificate {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeRegistration{
			StakeRegistration: c.StakeCredential.Utxorpc(),
		},
	}
}

type StakeDeregistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
}

func NewStakeDeregistrationCertificate(
	cred Credential,
) *StakeDeregistrationCertificate {
	return &StakeDeregistrationCertificate{
		CertType:        CertificateTypeStakeDeregistration,
		StakeCredential: cred,
	}
}

func (StakeDeregistrationCertificate) isCertificate() {}

func (c *StakeDeregistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	return c.UnmarshalCbor(cborData, c)
}

func (c *StakeDeregistrationCertificate) Type() uint {
	return c.CertType
}

func (c *StakeDeregistrationCertificate) Credential() Credential {
	return c.StakeCredential
}

func (c *StakeDeregistrationCertificate) Utxorpc() *utxorpc.Certificate {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDeregistration{
			StakeDeregistration: c.StakeCredential.Utxorpc(),
		},
	}
}

type StakeDelegationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     PoolKeyHash
}

func NewStakeDelegationCertificate(
	cred Credential,
	pool PoolKeyHash,
) *StakeDelegationCertificate {
	return &StakeDelegationCertificate{
		CertType:        CertificateTypeStakeDelegation,
		StakeCredential: cred,
		PoolKeyHash:     pool,
	}
}

func (StakeDelegationCertificate) isCertificate() {}

func (c *StakeDelegationCertificate) UnmarshalCBOR(cborData []byte) error {
	return c.UnmarshalCbor(cborData, c)
}

func (c *StakeDelegationCertificate) Type() uint {
	return c.CertType
}

func (c *StakeDelegationCertificate) Credential() Credential {
	return c.StakeCredential
}

func (c *StakeDelegationCertificate) Utxorpc() *utxorpc.Certificate {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDelegation{
			StakeDelegation: &utxorpc.StakeDelegationCert{
				StakeCredential: c.StakeCredential.Utxorpc(),
				PoolKeyhash:     c.PoolKeyHash.Bytes(),
			},
		},
	}
}

type RegistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	Amount          uint64
}

func NewRegistrationCertificate(
	cred Credential,
	deposit uint64,
) *RegistrationCertificate {
	return &RegistrationCertificate{
		CertType:        CertificateTypeRegistration,
		StakeCredential: cred,
		Amount:          deposit,
	}
}

func (RegistrationCertificate) isCertificate() {}

func (c *RegistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	return c.UnmarshalCbor(cborData, c)
}

func (c *RegistrationCertificate) Type() uint {
	return c.CertType
}

func (c *RegistrationCertificate) Credential() Credential {
	return c.StakeCredential
}

func (c *RegistrationCertificate) Utxorpc() *utxorpc.Certificate {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_RegCert{
			RegCert: &utxorpc.RegCert{
				StakeCredential: c.StakeCredential.Utxorpc(),
			},
		},
	}
}

type DeregistrationCertificate struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	CertType        uint
	StakeCredential Credential
	Amount          uint64
}

func NewDeregistrationCertificate(
	cred Credential,
	refund uint64,
) *DeregistrationCertificate {
	return &DeregistrationCertificate{
		CertType:        CertificateTypeDeregistration,
		StakeCredential: cred,
		Amount:          refund,
	}
}

func (DeregistrationCertificate) isCertificate() {}

func (c *DeregistrationCertificate) UnmarshalCBOR(cborData []byte) error {
	return c.UnmarshalCbor(cborData, c)
}

func (c *DeregistrationCertificate) Type() uint {
	return c.CertType
}

func (c *DeregistrationCertificate) Credential() Credential {
	return c.StakeCredential
}

func (c *DeregistrationCertificate) Utxorpc() *utxorpc.Certificate {
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_UnregCert{
			UnregCert: &utxorpc.UnRegCert{
				StakeCredential: c.StakeCredential.Utxorpc(),
			},
		},
	}
}
