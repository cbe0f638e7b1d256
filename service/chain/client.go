package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/log"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string

	// OperatorKey is the hex-encoded private key of the settlement
	// operator. Empty disables Transact.
	OperatorKey string
}

// Client reads from and writes to the chains the engine settles on.
// Transact signs with the operator key and waits only for acceptance into
// the mempool, not for inclusion.
type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	Transact(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) (common.Hash, error)
	Operator() common.Address
}

type clientImpl struct {
	clients  map[int32]*ethclient.Client
	key      *ecdsa.PrivateKey
	operator common.Address

	// guards the operator nonce per chain
	nonceMu sync.Mutex
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}

	im := &clientImpl{clients: clients}
	if cfg.OperatorKey != "" {
		key, err := crypto.HexToECDSA(cfg.OperatorKey)
		if err != nil {
			return nil, err
		}
		im.key = key
		im.operator = crypto.PubkeyToAddress(key.PublicKey)
	}
	return im, anyerr
}

func (c *clientImpl) Operator() common.Address {
	return c.operator
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (common.Hash, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return common.Hash{}, ErrUnsupportedChain
	}
	if c.key == nil {
		return common.Hash{}, errors.New("operator key not configured")
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return common.Hash{}, err
	}

	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	nonce, err := client.PendingNonceAt(ctx, c.operator)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return common.Hash{}, err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return common.Hash{}, err
	}
	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: c.operator,
		To:   &addr,
		Data: data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return common.Hash{}, err
	}

	tx := types.NewTransaction(nonce, addr, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), c.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return common.Hash{}, err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"tx":     signed.Hash().Hex(),
			"err":    err,
		}).Error("client.SendTransaction failed")
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}
